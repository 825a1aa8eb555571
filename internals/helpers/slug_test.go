package helper

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Yoga Basics", 100, "yoga-basics"},
		{"  HIIT   Cardio  ", 100, "hiit-cardio"},
		{"Sénior Pilatés", 100, "senior-pilates"},
		{"Body_Pump 2.0!", 100, "body-pump-2-0"},
		{"---", 100, "item"},
		{"", 100, "item"},
		{"abcdef", 3, "abc"},
	}
	for _, c := range cases {
		if got := Slugify(c.in, c.max); got != c.want {
			t.Errorf("Slugify(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestSlugifyStabil(t *testing.T) {
	a := Slugify("Morning Yoga Flow", 100)
	b := Slugify("Morning Yoga Flow", 100)
	if a != b {
		t.Fatalf("slug tidak stabil: %q vs %q", a, b)
	}
}

func TestSlugifyTanpaUnderscore(t *testing.T) {
	// Slug dipakai sebagai bagian pertama canonical session id yang
	// dipisah "__", jadi tidak boleh ada "_" di hasil.
	for _, in := range []string{"snake_case_name", "a__b", "_lead_trail_"} {
		got := Slugify(in, 100)
		for _, r := range got {
			if r == '_' {
				t.Fatalf("Slugify(%q) = %q mengandung underscore", in, got)
			}
		}
	}
}
