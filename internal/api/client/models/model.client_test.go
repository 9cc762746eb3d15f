package models

import "testing"

func TestClientKey(t *testing.T) {
	cases := []struct {
		name   string
		client Client
		want   string
	}{
		{"external ID wins", Client{UnoloClientID: "42", ClientName: "ABC School"}, "42"},
		{"name fallback", Client{ClientName: "ABC School"}, "ABC School"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.client.Key(); got != tc.want {
				t.Errorf("Key() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnknownClientPlaceholder(t *testing.T) {
	c := UnknownClient("77")
	if !c.Unknown {
		t.Error("Unknown flag not set")
	}
	if c.UnoloClientID != "77" {
		t.Errorf("UnoloClientID = %q, want the original reference", c.UnoloClientID)
	}
}
