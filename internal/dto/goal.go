package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// --- Goal DTOs ---

// GoalPayload defines the caller-editable goal fields for create and full
// update. The API expects it wrapped under a singular "goal" key.
type GoalPayload struct {
	Title        string            `json:"title" validate:"required"`
	Description  string            `json:"description"`
	DueDate      string            `json:"due_date" validate:"required,datetime=2006-01-02"`
	Status       domain.GoalStatus `json:"status,omitempty" validate:"omitempty,oneof=in_progress paused cancelled finished"`
	TargetAmount *decimal.Decimal  `json:"target_amount,omitempty"`
	GoalType     domain.GoalType   `json:"goal_type,omitempty" validate:"omitempty,oneof=company_goal employee_goal"`
	UserID       *int64            `json:"user_id,omitempty"`
	Pinned       bool              `json:"pinned"`
}

// GoalEnvelope wraps a goal payload the way the API expects request bodies.
type GoalEnvelope struct {
	Goal GoalPayload `json:"goal"`
}

// GoalStatusPatch is the body for a status-only patch.
type GoalStatusPatch struct {
	Goal struct {
		Status domain.GoalStatus `json:"status"`
	} `json:"goal"`
}

// GoalPinnedPatch is the body for a pinned-only patch.
type GoalPinnedPatch struct {
	Goal struct {
		Pinned bool `json:"pinned"`
	} `json:"goal"`
}

// ToDraft converts the validated payload into a domain draft.
func (p GoalPayload) ToDraft() (domain.GoalDraft, error) {
	dueDate, err := ParseWireDate(p.DueDate)
	if err != nil {
		return domain.GoalDraft{}, err
	}
	status := p.Status
	if status == "" {
		status = domain.GoalInProgress
	}
	return domain.GoalDraft{
		Title:        p.Title,
		Description:  p.Description,
		DueDate:      dueDate,
		Status:       status,
		TargetAmount: p.TargetAmount,
		GoalType:     p.GoalType,
		UserID:       p.UserID,
		Pinned:       p.Pinned,
	}, nil
}

// FromGoalDraft converts a domain draft into the wire payload.
func FromGoalDraft(d domain.GoalDraft) GoalPayload {
	return GoalPayload{
		Title:        d.Title,
		Description:  d.Description,
		DueDate:      d.DueDate.Format(DateLayout),
		Status:       d.Status,
		TargetAmount: d.TargetAmount,
		GoalType:     d.GoalType,
		UserID:       d.UserID,
		Pinned:       d.Pinned,
	}
}

// GoalResponse is the goal resource as the API returns it.
type GoalResponse struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	DueDate        string            `json:"due_date"`
	Status         domain.GoalStatus `json:"status"`
	OrganizationID int64             `json:"organization_id"`
	TargetAmount   *decimal.Decimal  `json:"target_amount"`
	GoalType       domain.GoalType   `json:"goal_type"`
	UserID         *int64            `json:"user_id"`
	Pinned         bool              `json:"pinned"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToDomain converts the wire goal into the domain model. An unparseable
// due date is left as the zero time rather than failing the whole listing.
func (r GoalResponse) ToDomain() domain.Goal {
	dueDate, _ := ParseWireDate(r.DueDate)
	return domain.Goal{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		DueDate:        dueDate,
		Status:         r.Status,
		OrganizationID: r.OrganizationID,
		TargetAmount:   r.TargetAmount,
		GoalType:       r.GoalType,
		UserID:         r.UserID,
		Pinned:         r.Pinned,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToDomainGoals converts a goal listing.
func ToDomainGoals(rs []GoalResponse) []domain.Goal {
	goals := make([]domain.Goal, len(rs))
	for i, r := range rs {
		goals[i] = r.ToDomain()
	}
	return goals
}
