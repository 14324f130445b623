package countries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const countriesJSON = `[
	{"name":"Portugal","flag":"https://flagcdn.com/pt.svg"},
	{"name":"Norway","flag":"https://flagcdn.com/no.svg"}
]`

func TestListDecodesCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(countriesJSON))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d countries, want 2", len(got))
	}
	if got[0].Name != "Portugal" || got[0].Flag != "https://flagcdn.com/pt.svg" {
		t.Fatalf("first country = %+v", got[0])
	}
}

func TestListMapsFailuresToErrUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream 500", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(srv.URL).List(context.Background())
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("List error = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestListUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient(srv.URL).List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("List error = %v, want ErrUnavailable", err)
	}
}

func TestFlagFor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(countriesJSON))
	}))
	defer srv.Close()
	c := NewClient(srv.URL)

	flag, err := c.FlagFor(context.Background(), "Norway")
	if err != nil {
		t.Fatalf("FlagFor: %v", err)
	}
	if flag != "https://flagcdn.com/no.svg" {
		t.Fatalf("flag = %q", flag)
	}

	if _, err := c.FlagFor(context.Background(), "Atlantis"); err == nil {
		t.Fatal("expected error for unknown country")
	}
}
