package fixedpoint

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the decimal form of the value.
//
// For the decimal point scales 10, 100 and 1000 the whole part and the
// fractional remainder are rendered from the raw integer with no float
// conversion. The remainder is zero padded to the unit's precision and
// trailing zeros are stripped, so a KiloWattHour raw of 310 renders as
// "3.1" and a raw of 305 as "3.05". When the remainder is zero only
// the whole part appears, with no decimal point.
//
// A scale of 1 renders the raw integer directly. Every other scale,
// including non decimal scales, falls back to float formatting.
func (v Value[U]) String() string {
	var u U

	switch u.Scale() {
	case 10, 100, 1000:
		return formatScaled(v.raw, Fixed(u.Scale()), u.Precision())
	case 1:
		return strconv.FormatInt(int64(v.raw), 10)
	default:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	}
}

// GoString renders the debug form: raw integer, scale and unit symbol,
// for example "501/100 kWh".
func (v Value[U]) GoString() string {
	var u U

	return fmt.Sprintf("%d/%v %s", v.raw, u.Scale(), u.Symbol())
}

// formatScaled renders sign, whole part and fractional remainder. The
// magnitude is widened to int64 so the minimum raw value negates
// safely.
func formatScaled(raw, scale Fixed, precision int) string {
	var b strings.Builder

	magn := int64(raw)
	if magn < 0 {
		b.WriteByte('-')
		magn = -magn
	}

	whole := magn / int64(scale)
	frac := magn % int64(scale)

	b.WriteString(strconv.FormatInt(whole, 10))

	if frac > 0 {
		width := precision
		for frac%10 == 0 {
			frac /= 10
			width--
		}

		digits := strconv.FormatInt(frac, 10)

		b.WriteByte('.')
		for i := len(digits); i < width; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	}

	return b.String()
}
