package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/staffdb/internal/employees/schema"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplyMigrations installs the $jsonSchema validator on the employees
// collection, creating it if needed, and ensures the indexes exist.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	validator := bson.M{"$jsonSchema": schema.JSONSchema()}

	err := s.db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: collectionName},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "strict"},
		{Key: "validationAction", Value: "error"},
	}).Err()

	if hasCode(err, codeNamespaceNotFound) {
		err = s.db.CreateCollection(ctx, collectionName, options.CreateCollection().
			SetValidator(validator).
			SetValidationLevel("strict").
			SetValidationAction("error"))
		if hasCode(err, codeNamespaceExists) {
			return s.ApplyMigrations(ctx)
		}
	}
	if err != nil {
		return fmt.Errorf("install validator: %w", err)
	}

	_, err = s.db.Collection(collectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetName("employee_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "department", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("department_id"),
		},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func hasCode(err error, code int) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(code)
}
