package wml

import (
	"math"
	"testing"
)

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    bool
		wantErr bool
	}{
		{name: "true token", value: "true", want: true},
		{name: "false token", value: "false", want: false},
		{name: "one token", value: "1", want: true},
		{name: "zero token", value: "0", want: false},
		{name: "capitalized token rejected", value: "True", wantErr: true},
		{name: "on token rejected", value: "on", wantErr: true},
		{name: "empty token rejected", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOnOff(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOnOff(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !IsParseBoolError(err) {
					t.Errorf("expected ParseBoolError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseOnOff(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseTextScale(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		wantErr bool
	}{
		{name: "one hundred percent", value: "100%", want: 1.0},
		{name: "six hundred percent", value: "600%", want: 6.0},
		{name: "fractional result", value: "333%", want: 3.33},
		{name: "zero percent", value: "0%", want: 0.0},
		{name: "over maximum", value: "601%", wantErr: true},
		{name: "missing percent sign", value: "100", wantErr: true},
		{name: "negative", value: "-5%", wantErr: true},
		{name: "not a number", value: "abc%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTextScale(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTextScale(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !IsPatternError(err) {
					t.Errorf("expected PatternError, got %T", err)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseTextScale(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseSignedMeasure(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Measure
		wantErr bool
	}{
		{name: "bare positive integer", value: "240", want: Measure{Value: 240}},
		{name: "bare negative integer", value: "-240", want: Measure{Value: -240}},
		{name: "millimeters", value: "12.7mm", want: Measure{Value: 12.7, Unit: UnitMillimeter}},
		{name: "points", value: "10pt", want: Measure{Value: 10, Unit: UnitPoint}},
		{name: "negative with unit", value: "-2.5cm", want: Measure{Value: -2.5, Unit: UnitCentimeter}},
		{name: "bare decimal rejected", value: "2.5", wantErr: true},
		{name: "unknown unit rejected", value: "10px", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSignedMeasure(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSignedMeasure(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSignedMeasure(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseUnsignedMeasure(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "bare positive", value: "240"},
		{name: "with unit", value: "1in"},
		{name: "bare negative rejected", value: "-240", wantErr: true},
		{name: "negative with unit rejected", value: "-1in", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUnsignedMeasure(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseUnsignedMeasure(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    HexColor
		wantErr bool
	}{
		{name: "auto", value: "auto", want: HexColor{Auto: true}},
		{name: "six hex digits", value: "1a2b3c", want: HexColor{RGB: "1A2B3C"}},
		{name: "uppercase hex digits", value: "FF0000", want: HexColor{RGB: "FF0000"}},
		{name: "too short", value: "fff", wantErr: true},
		{name: "non-hex characters", value: "zzzzzz", wantErr: true},
		{name: "leading hash rejected", value: "#ff0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !IsParseHexColorError(err) {
					t.Errorf("expected ParseHexColorError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseEnum(t *testing.T) {
	allowed := []string{"left", "right", "center"}

	if _, err := ParseEnum("center", allowed); err != nil {
		t.Errorf("ParseEnum() unexpected error: %v", err)
	}
	_, err := ParseEnum("middle", allowed)
	if err == nil {
		t.Fatal("ParseEnum() expected error for token outside the set")
	}
	if !IsParseEnumError(err) {
		t.Errorf("expected ParseEnumError, got %T", err)
	}
}
