package mappers

import (
	"telmesh/internal/domain/ticket"
	"telmesh/internal/infrastructure/persistence/models"
)

func TicketToModel(t *ticket.Ticket) *models.SupportTicketModel {
	return &models.SupportTicketModel{
		ID:               t.ID(),
		IssueDescription: t.IssueDescription(),
		Status:           t.Status(),
		CreatedDate:      toMilli(t.CreatedDate()),
		UserID:           t.UserID(),
		Version:          t.Version(),
		CreatedAt:        toMilli(t.CreatedAt()),
		UpdatedAt:        toMilli(t.UpdatedAt()),
	}
}

func TicketToDomain(m *models.SupportTicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		m.ID,
		m.IssueDescription,
		m.Status,
		fromMilli(m.CreatedDate),
		m.UserID,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func TicketsToDomain(ms []models.SupportTicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ms))
	for i := range ms {
		t, err := TicketToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
