package normalize

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty string stays empty",
			raw:  "",
			want: "",
		},
		{
			name: "merges hyphenated line breaks",
			raw:  "Experienced soft-\n  ware engineer",
			want: "experienced software engineer",
		},
		{
			name: "hyphen merge ignores case",
			raw:  "Data-\nBase Admin",
			want: "database admin",
		},
		{
			name: "keeps hyphens that are not line breaks",
			raw:  "full-stack developer",
			want: "full-stack developer",
		},
		{
			name: "drops page number lines",
			raw:  "end of page one\n 2 \nstart of page two",
			want: "end of page one start of page two",
		},
		{
			name: "replaces non-ascii runs with a space",
			raw:  "José Müller • Go",
			want: "jos m ller go",
		},
		{
			name: "collapses whitespace and trims",
			raw:  "\t  Jane\n\n\nDoe \r\n ",
			want: "jane doe",
		},
		{
			name: "removes control characters",
			raw:  "a\x00b\x1bc",
			want: "a b c",
		},
		{
			name: "lowercases everything",
			raw:  "PYTHON Developer",
			want: "python developer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// checkNormalized verifies the properties every normalized string must hold.
func checkNormalized(t *testing.T, raw string) {
	t.Helper()

	once := Normalize(raw)
	if twice := Normalize(once); twice != once {
		t.Errorf("not idempotent for %q: %q then %q", raw, once, twice)
	}

	for i := 0; i < len(once); i++ {
		if once[i] < 0x20 || once[i] > 0x7E {
			t.Errorf("non-printable byte %#x in %q", once[i], once)
		}
	}
	if strings.Contains(once, "  ") {
		t.Errorf("consecutive whitespace in %q", once)
	}
	if strings.TrimSpace(once) != once {
		t.Errorf("untrimmed output %q", once)
	}
	if strings.ToLower(once) != once {
		t.Errorf("output not lowercase %q", once)
	}
}

func TestNormalizeProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		" ",
		"\n\n\n",
		"Jane Doe\nSoftware Engi-\nneer\n\n3\n\nEXPERIENCE",
		"naïve café résumé",
		"日本語のテキスト mixed with ASCII",
		"tabs\tand\vvertical\ftabs",
		"1\n2\n3\n4",
		"a-\n-\nb",
		" leading nbsp",
		"emoji 🚀 rocket",
	}

	for _, in := range inputs {
		checkNormalized(t, in)
	}
}

func FuzzNormalize(f *testing.F) {
	f.Add("Jane Doe\nsoft-\nware\n 12 \nEngineer")
	f.Add("résumé\t\t•\r\n")
	f.Add("")

	f.Fuzz(func(t *testing.T, raw string) {
		checkNormalized(t, raw)
	})
}
