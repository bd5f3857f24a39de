package events

import "time"

// UserInvitedTopic carries invitations for newly provisioned members.
const UserInvitedTopic = "org.user.invite.v1"

type UserInvitedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	UserID         int64     `json:"user_id"`
	OrganisationID int64     `json:"organisation_id"`
	Email          string    `json:"email"`
	OccurredAt     time.Time `json:"occurred_at"`
}
