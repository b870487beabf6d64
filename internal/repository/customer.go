package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fastkart-parcels/internal/domain"
)

const (
	defaultCustomerLimit = 100
	maxCustomerLimit     = 500
)

type customerDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	Address      string             `bson:"address"`
	BusinessName string             `bson:"businessName,omitempty"`
	CreatedBy    primitive.ObjectID `bson:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d customerDoc) toDomain() domain.Customer {
	return domain.Customer{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Phone:        d.Phone,
		Address:      d.Address,
		BusinessName: d.BusinessName,
		CreatedBy:    hexOrEmpty(d.CreatedBy),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// CustomerRepo represents customer repository.
type CustomerRepo struct{ coll *mongo.Collection }

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{coll: db.Collection(CustomersCollection)}
}

// Create - inserts a customer and fills its ID and timestamps.
// A non-zero CreatedAt is kept (used when seeding historic data).
func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	d := customerDoc{
		Name:         c.Name,
		Phone:        c.Phone,
		Address:      c.Address,
		BusinessName: c.BusinessName,
		CreatedAt:    c.CreatedAt.UTC().Truncate(time.Millisecond),
	}
	if c.CreatedBy != "" {
		oid, err := objectID("createdBy", c.CreatedBy)
		if err != nil {
			return err
		}
		d.CreatedBy = oid
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now()
	}
	d.UpdatedAt = d.CreatedAt

	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	c.CreatedAt, c.UpdatedAt = d.CreatedAt, d.UpdatedAt
	return nil
}

// GetByID - returns customer by its ID, nil if absent or the id is malformed.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var d customerDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	c := d.toDomain()
	return &c, nil
}

// GetByIDs returns the customers found for ids keyed by ID. Malformed ids are skipped.
func (r *CustomerRepo) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Customer, error) {
	out := make(map[string]domain.Customer, len(ids))
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return out, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	var docs []customerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	for _, d := range docs {
		c := d.toDomain()
		out[c.ID] = c
	}
	return out, nil
}

// List returns customers sorted by name, optionally filtered by a search term.
func (r *CustomerRepo) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(customerLimit(f.Limit)))

	cur, err := r.coll.Find(ctx, customerQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	var docs []customerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	out := make([]domain.Customer, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// DeleteAll removes every customer.
func (r *CustomerRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete customers: %w", err)
	}
	return res.DeletedCount, nil
}

func customerQuery(f domain.CustomerFilter) bson.M {
	if f.Search == "" {
		return bson.M{}
	}
	re := searchRegex(f.Search)
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"phone": re},
		bson.M{"businessName": re},
	}}
}

func customerLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultCustomerLimit
	case limit > maxCustomerLimit:
		return maxCustomerLimit
	}
	return limit
}

// searchRegex matches term literally and case-insensitively.
func searchRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}
