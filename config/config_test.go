package config

import "testing"

func TestListenAddress(t *testing.T) {
	cases := []struct {
		name    string
		address string
		want    string
	}{
		{"full address", ":8080", ":8080"},
		{"bare port", "8080", ":8080"},
		{"host and port", "127.0.0.1:9090", "127.0.0.1:9090"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Configuration{Address: tc.address}
			if got := cfg.ListenAddress(); got != tc.want {
				t.Errorf("ListenAddress() = %q, want %q", got, tc.want)
			}
		})
	}
}
