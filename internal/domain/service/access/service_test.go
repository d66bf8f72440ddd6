package access

import (
	"errors"
	"testing"

	"AccelMailBot/internal/domain/errorz"
)

func TestIsAdmin(t *testing.T) {
	svc := New(map[int64]struct{}{7: {}, 42: {}})

	if !svc.IsAdmin(42) {
		t.Fatal("listed user must be admin")
	}
	if svc.IsAdmin(99) {
		t.Fatal("unlisted user must not be admin")
	}

	empty := New(nil)
	if empty.IsAdmin(42) {
		t.Fatal("nil allowlist must deny everyone")
	}
}

func TestRequire(t *testing.T) {
	svc := New(map[int64]struct{}{7: {}})

	if err := svc.Require(7); err != nil {
		t.Fatalf("Require(7) = %v", err)
	}
	if err := svc.Require(8); !errors.Is(err, errorz.ErrForbidden) {
		t.Fatalf("Require(8) = %v, want ErrForbidden", err)
	}
}

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name                      string
		explicit, stored, ambient string
		want                      Role
	}{
		{"explicit wins over stored and ambient", "admin", "user", "user", RoleAdmin},
		{"explicit non-admin wins", "user", "admin", "admin", RoleUser},
		{"stored fills an empty explicit", "", "admin", "user", RoleAdmin},
		{"ambient is the last resort", "", "", "admin", RoleAdmin},
		{"everything empty resolves to user", "", "", "", RoleUser},
		{"case and whitespace are normalized", "  Admin ", "", "", RoleAdmin},
		{"unknown roles resolve to user", "owner", "", "", RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRole(tt.explicit, tt.stored, tt.ambient); got != tt.want {
				t.Fatalf("ResolveRole(%q, %q, %q) = %q, want %q", tt.explicit, tt.stored, tt.ambient, got, tt.want)
			}
		})
	}
}
