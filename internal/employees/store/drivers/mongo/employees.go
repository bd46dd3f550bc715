package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// employeeDoc is the stored shape. The internal id doubles as _id.
type employeeDoc struct {
	ID          string    `bson:"_id"`
	EmployeeID  string    `bson:"employee_id"`
	Name        string    `bson:"name"`
	Department  string    `bson:"department"`
	Salary      float64   `bson:"salary"`
	JoiningDate time.Time `bson:"joining_date"`
	Skills      []string  `bson:"skills"`
	CreatedAt   time.Time `bson:"created_at,omitempty"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty"`
}

func toDoc(e domain.Employee, now time.Time) employeeDoc {
	return employeeDoc{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Department:  e.Department,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate.Time(),
		Skills:      nonNil(e.Skills),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (d employeeDoc) toDomain() domain.Employee {
	return domain.Employee{
		ID:          d.ID,
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Department:  d.Department,
		Salary:      d.Salary,
		JoiningDate: domain.DateOf(d.JoiningDate.UTC()),
		Skills:      nonNil(d.Skills),
	}
}

type employeesRepo struct {
	coll *mongo.Collection
}

var byID = bson.D{{Key: "_id", Value: 1}}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.coll.InsertOne(ctx, toDoc(e, time.Now().UTC()))
	return mapErr(err)
}

func (r *employeesRepo) GetEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	var doc employeeDoc
	err := r.coll.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc)
	if err != nil {
		return domain.Employee{}, mapErr(err)
	}
	return doc.toDomain(), nil
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, employeeID string, p domain.EmployeePatch) (domain.Employee, error) {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Department != nil {
		set["department"] = *p.Department
	}
	if p.Salary != nil {
		set["salary"] = *p.Salary
	}
	if p.JoiningDate != nil {
		set["joining_date"] = p.JoiningDate.Time()
	}
	if p.Skills != nil {
		set["skills"] = nonNil(*p.Skills)
	}
	if len(set) == 0 {
		return domain.Employee{}, fmt.Errorf("mongo: empty update for %q", employeeID)
	}
	set["updated_at"] = time.Now().UTC()

	var doc employeeDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"employee_id": employeeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return domain.Employee{}, mapErr(err)
	}
	return doc.toDomain(), nil
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	var doc employeeDoc
	err := r.coll.FindOneAndDelete(ctx, bson.M{"employee_id": employeeID}).Decode(&doc)
	if err != nil {
		return domain.Employee{}, mapErr(err)
	}
	return doc.toDomain(), nil
}

func (r *employeesRepo) ListByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	return r.find(ctx, bson.M{"department": department}, options.Find().SetSort(byID))
}

func (r *employeesRepo) ListEmployees(ctx context.Context, offset, limit int) ([]domain.Employee, error) {
	return r.find(ctx, bson.M{}, options.Find().
		SetSort(byID).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)))
}

func (r *employeesRepo) CountEmployees(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, mapErr(err)
}

// SearchBySkills ORs one case-insensitive regex per term. Terms are quoted
// so user input never acts as a pattern.
func (r *employeesRepo) SearchBySkills(ctx context.Context, terms []string) ([]domain.Employee, error) {
	if len(terms) == 0 {
		return []domain.Employee{}, nil
	}

	or := make(bson.A, len(terms))
	for i, t := range terms {
		or[i] = bson.M{"skills": primitive.Regex{Pattern: regexp.QuoteMeta(t), Options: "i"}}
	}
	return r.find(ctx, bson.M{"$or": or}, options.Find().SetSort(byID))
}

func (r *employeesRepo) AverageSalaryByDepartment(ctx context.Context) ([]domain.DepartmentSalary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "average_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "department", Value: "$_id"},
			{Key: "average_salary", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "department", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapErr(err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Department    string  `bson:"department"`
		AverageSalary float64 `bson:"average_salary"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.DepartmentSalary, len(rows))
	for i, row := range rows {
		out[i] = domain.DepartmentSalary{Department: row.Department, AverageSalary: row.AverageSalary}
	}
	return out, nil
}

func (r *employeesRepo) find(ctx context.Context, filter any, opts *options.FindOptions) ([]domain.Employee, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	defer cur.Close(ctx)

	var docs []employeeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.Employee, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ store.Employees = (*employeesRepo)(nil)
