package employee

import (
	"errors"
	"sort"
	"strings"
	"time"

	employeeerrors "go-workhub/internal/employee/errors"
	"go-workhub/internal/user"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage errors into domain errors. Unique
// violations on users.email surface as a conflict, missing rows as not found.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}

// rowRolePrecedence orders role labels for display: admin first, the base
// employee role last, everything else in between by name.
func rowRolePrecedence(name string) int {
	switch name {
	case user.RoleAdmin:
		return 0
	case user.RoleEmployee:
		return 2
	default:
		return 1
	}
}

func mapToRowResponses(rows []Row) []RowResponse {
	out := make([]RowResponse, len(rows))
	for i, row := range rows {
		roles := []string{}
		if row.RoleNames != "" {
			roles = strings.Split(row.RoleNames, ",")
		}
		sort.SliceStable(roles, func(a, b int) bool {
			pa, pb := rowRolePrecedence(roles[a]), rowRolePrecedence(roles[b])
			if pa != pb {
				return pa < pb
			}
			return roles[a] < roles[b]
		})

		primary := ""
		if len(roles) > 0 {
			primary = roles[0]
		}

		out[i] = RowResponse{
			ID:          row.ID,
			Name:        row.Name,
			Email:       row.Email,
			Image:       row.Image,
			Status:      row.Status,
			Roles:       roles,
			PrimaryRole: primary,
			CreatedAt:   row.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
