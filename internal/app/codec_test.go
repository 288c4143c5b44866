package app

import (
	"errors"
	"strings"
	"testing"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2023-02-28", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2023-02-30", false},
		{"2023-13-01", false},
		{"23-1-1", false},
		{"0000-01-01", false},
		{"0001-01-01", true},
		{"2023-1-01", false},
		{"2023/01/01", false},
		{" 2023-01-01", false},
		{"2023-01-01x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := ValidDate(tt.date); got != tt.want {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Record
		wantErr error
	}{
		{
			name:  "Simple",
			input: "2024-01-01|Meeting|Discuss roadmap",
			want:  Record{Date: "2024-01-01", Title: "Meeting", Text: "Discuss roadmap"},
		},
		{
			name:  "Trims each field",
			input: "  2024-01-01 | Meeting \t|  Discuss roadmap \n",
			want:  Record{Date: "2024-01-01", Title: "Meeting", Text: "Discuss roadmap"},
		},
		{
			name:  "Text keeps extra separators",
			input: "2024-01-01|Meeting|a|b|c",
			want:  Record{Date: "2024-01-01", Title: "Meeting", Text: "a|b|c"},
		},
		{
			name:  "Empty title and text",
			input: "2024-01-01||",
			want:  Record{Date: "2024-01-01"},
		},
		{
			name:  "Trims ASCII separator controls",
			input: "2024-01-01\x1f|\x1cMeeting\x1d|\x1eDiscuss\u00a0",
			want:  Record{Date: "2024-01-01", Title: "Meeting", Text: "Discuss"},
		},
		{
			name:    "No separator",
			input:   "2024-01-01",
			wantErr: ErrMalformed,
		},
		{
			name:    "One separator",
			input:   "2024-01-01|Meeting",
			wantErr: ErrMalformed,
		},
		{
			name:    "Empty body",
			input:   "",
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecord(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeRecord() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DecodeRecord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecordEncode(t *testing.T) {
	rec := Record{Date: "2024-01-01", Title: "Meeting", Text: "a|b"}
	if got := rec.Encode(); got != "2024-01-01|Meeting|a|b" {
		t.Errorf("Encode() = %q", got)
	}

	decoded, err := DecodeRecord(rec.Encode())
	if err != nil {
		t.Fatalf("DecodeRecord() failed: %v", err)
	}
	if decoded != rec {
		t.Errorf("decoded %+v, want %+v", decoded, rec)
	}
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr error
	}{
		{"Valid", Record{Date: "2023-02-28", Title: "t", Text: "x"}, nil},
		{"Impossible date", Record{Date: "2023-02-30"}, ErrInvalidDate},
		{"Short date", Record{Date: "23-1-1"}, ErrInvalidDate},
		{"Title at limit", Record{Date: "2024-01-01", Title: strings.Repeat("a", 30)}, nil},
		{"Title over limit", Record{Date: "2024-01-01", Title: strings.Repeat("a", 31)}, ErrTitleTooLong},
		{"Text at limit", Record{Date: "2024-01-01", Text: strings.Repeat("a", 200)}, nil},
		{"Text over limit", Record{Date: "2024-01-01", Text: strings.Repeat("a", 201)}, ErrTextTooLong},
		{"Multibyte title at limit", Record{Date: "2024-01-01", Title: strings.Repeat("ü", 30)}, nil},
		{"Date checked before title", Record{Date: "bad", Title: strings.Repeat("a", 31)}, ErrInvalidDate},
		{"Title checked before text", Record{Date: "2024-01-01", Title: strings.Repeat("a", 31), Text: strings.Repeat("a", 201)}, ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.rec.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
