package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
)

func TestMenuForRole(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		role       entity.Role
		wantLabels []string
	}{
		{
			role: entity.RoleAdmin,
			wantLabels: []string{
				"Overview", "Users", "Candidates", "Partners",
				"News Moderation", "Jobs", "Messages", "Settings",
			},
		},
		{
			role:       entity.RoleClient,
			wantLabels: []string{"Overview", "Projects", "Invoices", "Support", "Settings"},
		},
		{
			role:       entity.RoleCandidate,
			wantLabels: []string{"Overview", "Job Board", "Applications", "Career Copilot", "Settings"},
		},
		{
			role:       entity.RolePartner,
			wantLabels: []string{"Overview", "Tasks", "Earnings", "News", "Settings"},
		},
	} {
		tt := tt
		t.Run(tt.role.String(), func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			menu := service.MenuForRole(tt.role)

			labels := make([]string, 0, len(menu))
			for _, item := range menu {
				labels = append(labels, item.Label)
			}

			r.Equal(tt.wantLabels, labels)
		})
	}
}

func TestMenuForRole_Unset(t *testing.T) {
	t.Parallel()

	require.Empty(t, service.MenuForRole(entity.RoleUnset))
}

// Roles must never share a dashboard section beyond Overview and Settings.
func TestMenuForRole_Exclusive(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	shared := map[string]bool{"Overview": true, "Settings": true}
	seen := map[string]entity.Role{}

	for _, role := range []entity.Role{
		entity.RoleAdmin, entity.RoleClient, entity.RoleCandidate, entity.RolePartner,
	} {
		for _, item := range service.MenuForRole(role) {
			if shared[item.Label] {
				continue
			}

			owner, ok := seen[item.Label]
			r.Falsef(ok, "menu item %q appears for both %s and %s", item.Label, owner, role)
			seen[item.Label] = role
		}
	}
}
