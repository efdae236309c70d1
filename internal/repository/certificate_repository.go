package repository

import (
	"context"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CertificateRepository struct {
	Col *mongo.Collection
}

func NewCertificateRepository(db *mongo.Database) *CertificateRepository {
	return &CertificateRepository{Col: db.Collection("certificates")}
}

func (r *CertificateRepository) Create(ctx context.Context, cert *models.NFTCertificate) error {
	_, err := r.Col.InsertOne(ctx, cert)
	return err
}

func (r *CertificateRepository) FindByStudent(ctx context.Context, studentID string) ([]models.NFTCertificate, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var certs []models.NFTCertificate
	for cur.Next(ctx) {
		var c models.NFTCertificate
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, nil
}
