package styler_test

import (
	"math"
	"testing"

	"github.com/bjaus/styler"
	"github.com/stretchr/testify/assert"
)

func TestPercentOrNull(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		x    *float64
		want string
	}{
		"nil":          {x: nil, want: "None"},
		"nan":          {x: styler.Float(math.NaN()), want: "None"},
		"revenue":      {x: styler.Float(0.0455), want: "4.55%"},
		"small":        {x: styler.Float(0.0189), want: "1.89%"},
		"whole":        {x: styler.Float(1), want: "100.00%"},
		"half":         {x: styler.Float(0.5), want: "50.00%"},
		"negative":     {x: styler.Float(-0.25), want: "-25.00%"},
		"zero":         {x: styler.Float(0), want: "0.00%"},
		"large":        {x: styler.Float(123.45), want: "12345.00%"},
		"inf":          {x: styler.Float(math.Inf(1)), want: "inf%"},
		"negative inf": {x: styler.Float(math.Inf(-1)), want: "-inf%"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styler.PercentOrNull(tt.x))
		})
	}
}

func TestRoundOrNull(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		x         *float64
		precision int
		want      string
	}{
		"nil":                {x: nil, precision: 2, want: "None"},
		"nan":                {x: styler.Float(math.NaN()), precision: 2, want: "None"},
		"revenue 2020":       {x: styler.Float(100.212313), precision: 2, want: "100.21"},
		"revenue 2021":       {x: styler.Float(70.709275), precision: 2, want: "70.71"},
		"thousands":          {x: styler.Float(1234567.891), precision: 2, want: "1,234,567.89"},
		"pads decimals":      {x: styler.Float(1000), precision: 2, want: "1,000.00"},
		"carry into group":   {x: styler.Float(999.999), precision: 2, want: "1,000.00"},
		"zero precision":     {x: styler.Float(1234.4), precision: 0, want: "1,234"},
		"half even":          {x: styler.Float(0.5), precision: 0, want: "0"},
		"negative":           {x: styler.Float(-1234.5678), precision: 1, want: "-1,234.6"},
		"negative zero":      {x: styler.Float(-0.001), precision: 2, want: "-0.00"},
		"negative precision": {x: styler.Float(3.7), precision: -1, want: "4"},
		"four decimals":      {x: styler.Float(0.0189), precision: 4, want: "0.0189"},
		"inf":                {x: styler.Float(math.Inf(1)), precision: 2, want: "inf"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styler.RoundOrNull(tt.x, tt.precision))
		})
	}
}

func TestFormatterAdapters(t *testing.T) {
	t.Parallel()
	var nilFloat *float64
	tests := map[string]struct {
		fn   styler.Formatter
		v    any
		want string
	}{
		"percent nil":                          {fn: styler.Percent, v: nil, want: "None"},
		"percent nil pointer":                  {fn: styler.Percent, v: nilFloat, want: "None"},
		"percent nan":                          {fn: styler.Percent, v: math.NaN(), want: "None"},
		"percent int":                          {fn: styler.Percent, v: 1, want: "100.00%"},
		"percent string":                       {fn: styler.Percent, v: "n/a", want: "n/a"},
		"round default":                        {fn: styler.Round(styler.DefaultPrecision), v: 100.212313, want: "100.21"},
		"round float32":                        {fn: styler.Round(3), v: float32(1.5), want: "1.500"},
		"round int64":                          {fn: styler.Round(0), v: int64(1234567), want: "1,234,567"},
		"round uint8":                          {fn: styler.Round(1), v: uint8(7), want: "7.0"},
		"round pointer":                        {fn: styler.Round(2), v: styler.Float(2.5), want: "2.50"},
		"round nil":                            {fn: styler.Round(2), v: nil, want: "None"},
		"round non numeric":                    {fn: styler.Round(2), v: true, want: "true"},
		"percent zero int":                     {fn: styler.Percent, v: 0, want: "0.00%"},
		"percent negative int":                 {fn: styler.Percent, v: -3, want: "-300.00%"},
		"percent int64 beyond float precision": {fn: styler.Percent, v: int64(9007199254740993), want: "900719925474099300.00%"},
		"round int64 beyond float precision":   {fn: styler.Round(2), v: int64(9007199254740993), want: "9,007,199,254,740,993.00"},
		"round max uint64":                     {fn: styler.Round(0), v: uint64(18446744073709551615), want: "18,446,744,073,709,551,615"},
		"round negative int":                   {fn: styler.Round(1), v: -1234, want: "-1,234.0"},
		"raw nil":                              {fn: styler.Raw, v: nil, want: ""},
		"raw float":                            {fn: styler.Raw, v: 0.0455, want: "0.0455"},
		"raw string":                           {fn: styler.Raw, v: "x", want: "x"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.v))
		})
	}
}
