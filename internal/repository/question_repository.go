package repository

import (
	"context"

	"exam-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

// FindByStandardSubject returns every question filed under the
// (standard, subject) pair. An empty slice is a legitimate result, not
// an error.
func (r *QuestionRepository) FindByStandardSubject(ctx context.Context, standard, subject string) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{"standard": standard, "subject": subject})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question); err != nil {
		return nil, err
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	return &question, nil
}
