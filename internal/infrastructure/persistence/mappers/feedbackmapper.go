package mappers

import (
	"telmesh/internal/domain/feedback"
	"telmesh/internal/infrastructure/persistence/models"
)

func FeedbackToModel(f *feedback.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:            f.ID(),
		FeedbackText:  f.Text(),
		Rating:        f.Rating(),
		SubmittedDate: toMilli(f.SubmittedDate()),
		UserID:        f.UserID(),
		ServicePlanID: f.PlanID(),
		Version:       f.Version(),
		CreatedAt:     toMilli(f.CreatedAt()),
		UpdatedAt:     toMilli(f.UpdatedAt()),
	}
}

func FeedbackToDomain(m *models.FeedbackModel) (*feedback.Feedback, error) {
	return feedback.ReconstructFeedback(
		m.ID,
		m.FeedbackText,
		m.Rating,
		fromMilli(m.SubmittedDate),
		m.UserID,
		m.ServicePlanID,
		fromMilli(m.CreatedAt),
		fromMilli(m.UpdatedAt),
		m.Version,
	)
}

func FeedbacksToDomain(ms []models.FeedbackModel) ([]*feedback.Feedback, error) {
	feedbacks := make([]*feedback.Feedback, 0, len(ms))
	for i := range ms {
		f, err := FeedbackToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, nil
}
