package helpers

import "testing"

func TestEmailSlug(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"ada@example.com", "ada-example-com"},
		{"first.last@mail.co.uk", "first-last-mail-co-uk"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := EmailSlug(c.email); got != c.want {
			t.Errorf("EmailSlug(%q) = %q, want %q", c.email, got, c.want)
		}
	}
}

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Backend", "backend"},
		{"  DevOps  ", "devops"},
		{"already-lower", "already-lower"},
	}
	for _, c := range cases {
		if got := NormalizeSlug(c.in); got != c.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
