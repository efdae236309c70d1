package repository

import (
	"context"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestRepository struct {
	Col *mongo.Collection
}

func NewQuestRepository(db *mongo.Database) *QuestRepository {
	return &QuestRepository{Col: db.Collection("quests")}
}

func (r *QuestRepository) FindAll(ctx context.Context) ([]models.Quest, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quests []models.Quest
	for cur.Next(ctx) {
		var q models.Quest
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, nil
}

// FindByID returns nil without error when no quest has the id, so callers
// can tell a missing quest from a failed lookup.
func (r *QuestRepository) FindByID(ctx context.Context, id string) (*models.Quest, error) {
	var quest models.Quest
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &quest, nil
}

func (r *QuestRepository) FindByModuleID(ctx context.Context, moduleID string) ([]models.Quest, error) {
	cur, err := r.Col.Find(ctx, bson.M{"module_id": moduleID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quests []models.Quest
	for cur.Next(ctx) {
		var q models.Quest
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	return quests, nil
}

func (r *QuestRepository) Create(ctx context.Context, quest *models.Quest) error {
	_, err := r.Col.InsertOne(ctx, quest)
	return err
}

func (r *QuestRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
