package phase

import "encoding/json"

// Option is a reading that may be absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present. The value is the
// zero value when absent.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// MarshalJSON implements json.Marshaler. An absent option marshals as
// null, a present one as its value.
func (o Option[T]) MarshalJSON() (data []byte, err error) {
	if !o.present {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Option[T]) UnmarshalJSON(data []byte) (err error) {
	if string(data) == "null" {
		*o = Option[T]{}

		return nil
	}

	err = json.Unmarshal(data, &o.value)
	if err != nil {
		return err
	}

	o.present = true

	return nil
}
