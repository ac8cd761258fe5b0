package fixedpoint

import (
	"strconv"

	"github.com/calebcase/oops"
)

// MarshalJSON implements json.Marshaler. The wire form is the bare raw
// integer: a KiloWattHour value of 5.01 marshals as 501.
func (v Value[U]) MarshalJSON() (data []byte, err error) {
	return strconv.AppendInt(nil, int64(v.raw), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. The integer is read
// directly into the raw field with no scale reinterpretation, so the
// target unit must match the producer's.
func (v *Value[U]) UnmarshalJSON(data []byte) (err error) {
	raw, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return oops.Trace(ErrInvalidNumber)
	}

	v.raw = Fixed(raw)

	return nil
}
