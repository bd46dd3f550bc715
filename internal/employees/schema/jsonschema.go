package schema

import "go.mongodb.org/mongo-driver/bson"

// RequiredFields are the document fields every employee must carry.
var RequiredFields = []string{"employee_id", "name", "department", "salary", "joining_date", "skills"}

// JSONSchema returns the $jsonSchema document enforced by the Mongo
// collection validator. It mirrors Validate, minus the blank-string check
// which $jsonSchema cannot express.
func JSONSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": RequiredFields,
		"properties": bson.M{
			"employee_id": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"maxLength":   MaxEmployeeIDLen,
				"description": "must be a non-empty string and is required",
			},
			"name": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"maxLength":   MaxNameLen,
				"description": "must be a non-empty string and is required",
			},
			"department": bson.M{
				"bsonType":    "string",
				"minLength":   1,
				"maxLength":   MaxDepartmentLen,
				"description": "must be a non-empty string and is required",
			},
			"salary": bson.M{
				"bsonType":    bson.A{"double", "int", "long", "decimal"},
				"minimum":     0,
				"description": "must be a non-negative number and is required",
			},
			"joining_date": bson.M{
				"bsonType":    "date",
				"description": "must be a date and is required",
			},
			"skills": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"description": "must be an array of non-empty strings and is required",
			},
		},
	}
}
