package user

import "time"

type DirectoryEntryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toDirectoryResponse(entries []DirectoryEntry) []DirectoryEntryResponse {
	res := make([]DirectoryEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = DirectoryEntryResponse{
			ID:        e.ID,
			Name:      e.Name,
			Email:     e.Email,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	return res
}
