package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
)

type parcelDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	PublicID             string             `bson:"publicId"`
	TrackingID           string             `bson:"trackingId"`
	Customer             primitive.ObjectID `bson:"customer"`
	CustomerName         string             `bson:"customerName"`
	CustomerPhone        string             `bson:"customerPhone"`
	PickupAddress        string             `bson:"pickupAddress"`
	DeliveryAddress      string             `bson:"deliveryAddress"`
	Description          string             `bson:"description,omitempty"`
	Weight               *float64           `bson:"weight,omitempty"`
	Volume               *float64           `bson:"volume,omitempty"`
	Mode                 string             `bson:"mode,omitempty"`
	PickupTime           *time.Time         `bson:"pickupTime,omitempty"`
	DeliveryTime         *time.Time         `bson:"deliveryTime,omitempty"`
	ExpectedDeliveryTime *time.Time         `bson:"expectedDeliveryTime,omitempty"`
	Status               string             `bson:"status"`
	InternalNotes        string             `bson:"internalNotes,omitempty"`
	AssignedRider        string             `bson:"assignedRider,omitempty"`
	ProofURLs            []string           `bson:"proofUrls"`
	CreatedBy            primitive.ObjectID `bson:"createdBy,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt"`
}

func (d parcelDoc) toDomain() domain.Parcel {
	proofs := d.ProofURLs
	if proofs == nil {
		proofs = []string{}
	}
	return domain.Parcel{
		ID:                   d.ID.Hex(),
		PublicID:             d.PublicID,
		TrackingID:           d.TrackingID,
		CustomerID:           hexOrEmpty(d.Customer),
		CustomerName:         d.CustomerName,
		CustomerPhone:        d.CustomerPhone,
		PickupAddress:        d.PickupAddress,
		DeliveryAddress:      d.DeliveryAddress,
		Description:          d.Description,
		Weight:               d.Weight,
		Volume:               d.Volume,
		Mode:                 domain.TransportMode(d.Mode),
		PickupTime:           utcPtr(d.PickupTime),
		DeliveryTime:         utcPtr(d.DeliveryTime),
		ExpectedDeliveryTime: utcPtr(d.ExpectedDeliveryTime),
		Status:               domain.ParcelStatus(d.Status),
		InternalNotes:        d.InternalNotes,
		AssignedRider:        d.AssignedRider,
		ProofURLs:            proofs,
		CreatedBy:            hexOrEmpty(d.CreatedBy),
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}
}

func toParcelDoc(p *domain.Parcel) (parcelDoc, error) {
	customer, err := objectID("customerId", p.CustomerID)
	if err != nil {
		return parcelDoc{}, err
	}
	d := parcelDoc{
		PublicID:             p.PublicID,
		TrackingID:           p.TrackingID,
		Customer:             customer,
		CustomerName:         p.CustomerName,
		CustomerPhone:        p.CustomerPhone,
		PickupAddress:        p.PickupAddress,
		DeliveryAddress:      p.DeliveryAddress,
		Description:          p.Description,
		Weight:               p.Weight,
		Volume:               p.Volume,
		Mode:                 string(p.Mode),
		PickupTime:           p.PickupTime,
		DeliveryTime:         p.DeliveryTime,
		ExpectedDeliveryTime: p.ExpectedDeliveryTime,
		Status:               string(p.Status),
		InternalNotes:        p.InternalNotes,
		AssignedRider:        p.AssignedRider,
		ProofURLs:            p.ProofURLs,
		CreatedAt:            p.CreatedAt.UTC().Truncate(time.Millisecond),
	}
	if d.ProofURLs == nil {
		d.ProofURLs = []string{}
	}
	if p.CreatedBy != "" {
		if d.CreatedBy, err = objectID("createdBy", p.CreatedBy); err != nil {
			return parcelDoc{}, err
		}
	}
	return d, nil
}

// ParcelRepo represents parcel repository.
type ParcelRepo struct{ coll *mongo.Collection }

// NewParcelRepo creates a new ParcelRepo.
func NewParcelRepo(db *mongo.Database) *ParcelRepo {
	return &ParcelRepo{coll: db.Collection(ParcelsCollection)}
}

// Create - inserts a parcel and fills its ID and timestamps.
// Returns apperr.ErrConflict if publicId or trackingId is already taken.
func (r *ParcelRepo) Create(ctx context.Context, p *domain.Parcel) error {
	d, err := toParcelDoc(p)
	if err != nil {
		return err
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now()
	}
	d.UpdatedAt = d.CreatedAt

	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create parcel: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	p.ProofURLs = d.ProofURLs
	p.CreatedAt, p.UpdatedAt = d.CreatedAt, d.UpdatedAt
	return nil
}

// GetByPublicID - returns parcel by its public id, nil if absent.
func (r *ParcelRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.Parcel, error) {
	return r.findOne(ctx, bson.M{"publicId": publicID})
}

// GetByTrackingID - returns parcel by its tracking id, nil if absent.
func (r *ParcelRepo) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Parcel, error) {
	return r.findOne(ctx, bson.M{"trackingId": trackingID})
}

// GetByPublicOrTrackingID - returns the parcel whose public or tracking id equals id.
func (r *ParcelRepo) GetByPublicOrTrackingID(ctx context.Context, id string) (*domain.Parcel, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"publicId": id},
		bson.M{"trackingId": id},
	}})
}

func (r *ParcelRepo) findOne(ctx context.Context, filter bson.M) (*domain.Parcel, error) {
	var d parcelDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find parcel: %w", err)
	}
	p := d.toDomain()
	return &p, nil
}

// List returns one page of parcels matching f and the total number of matches.
func (r *ParcelRepo) List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, int64, error) {
	query, err := parcelQuery(f)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count parcels: %w", err)
	}

	opts := options.Find().
		SetSort(parcelSort(f)).
		SetSkip(int64(f.Skip()))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	items, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update applies the touched fields of u and returns the updated parcel, nil if absent.
func (r *ParcelRepo) Update(ctx context.Context, publicID string, u domain.ParcelUpdate) (*domain.Parcel, error) {
	update := parcelUpdate(u, now())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d parcelDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"publicId": publicID}, update, opts).Decode(&d)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update parcel %s: %w", publicID, err)
	}
	p := d.toDomain()
	return &p, nil
}

// Delete removes a parcel by public id and reports whether it existed.
func (r *ParcelRepo) Delete(ctx context.Context, publicID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"publicId": publicID})
	if err != nil {
		return false, fmt.Errorf("delete parcel %s: %w", publicID, err)
	}
	return res.DeletedCount > 0, nil
}

// Count returns the number of stored parcels.
func (r *ParcelRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count parcels: %w", err)
	}
	return n, nil
}

// CountByStatus returns parcel counts grouped by status. Statuses without parcels are absent.
func (r *ParcelRepo) CountByStatus(ctx context.Context) (map[domain.ParcelStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count parcels by status: %w", err)
	}
	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode status counts: %w", err)
	}
	out := make(map[domain.ParcelStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.ParcelStatus(row.Status)] = row.Count
	}
	return out, nil
}

// Recent returns the n most recently created parcels, newest first.
func (r *ParcelRepo) Recent(ctx context.Context, n int) ([]domain.Parcel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(n))
	return r.find(ctx, bson.M{}, opts)
}

// DailyCounts returns per-day creation counts (UTC dates) since the given instant, ascending.
func (r *ParcelRepo) DailyCounts(ctx context.Context, since time.Time) ([]domain.DailyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("daily parcel counts: %w", err)
	}
	var rows []struct {
		Date  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode daily counts: %w", err)
	}
	out := make([]domain.DailyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DailyCount{Date: row.Date, Count: row.Count})
	}
	return out, nil
}

// ListCreatedBetween returns parcels created within [start, end], oldest first.
func (r *ParcelRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]domain.Parcel, error) {
	filter := bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, filter, opts)
}

// DeleteAll removes every parcel.
func (r *ParcelRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete parcels: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ParcelRepo) find(ctx context.Context, filter any, opts *options.FindOptions) ([]domain.Parcel, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find parcels: %w", err)
	}
	var docs []parcelDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode parcels: %w", err)
	}
	out := make([]domain.Parcel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func parcelQuery(f domain.ParcelFilter) (bson.M, error) {
	query := bson.M{}
	if f.Search != "" {
		re := searchRegex(f.Search)
		query["$or"] = bson.A{
			bson.M{"customerName": re},
			bson.M{"trackingId": re},
			bson.M{"pickupAddress": re},
			bson.M{"deliveryAddress": re},
		}
	}
	if len(f.Statuses) > 0 {
		statuses := make(bson.A, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		query["status"] = bson.M{"$in": statuses}
	}
	if len(f.Modes) > 0 {
		modes := make(bson.A, 0, len(f.Modes))
		for _, m := range f.Modes {
			modes = append(modes, string(m))
		}
		query["mode"] = bson.M{"$in": modes}
	}
	if f.CustomerID != "" {
		oid, err := objectID("customerId", f.CustomerID)
		if err != nil {
			return nil, err
		}
		query["customer"] = oid
	}
	return query, nil
}

func parcelSort(f domain.ParcelFilter) bson.D {
	field := f.SortBy
	if !field.Valid() {
		field = domain.SortCreatedAt
	}
	dir := -1
	if f.Ascending {
		dir = 1
	}
	return bson.D{{Key: string(field), Value: dir}, {Key: "_id", Value: dir}}
}

func parcelUpdate(u domain.ParcelUpdate, ts time.Time) bson.M {
	set := bson.M{"updatedAt": ts}
	unset := bson.M{}

	patchString(set, unset, "customerName", u.CustomerName)
	patchString(set, unset, "customerPhone", u.CustomerPhone)
	patchString(set, unset, "pickupAddress", u.PickupAddress)
	patchString(set, unset, "deliveryAddress", u.DeliveryAddress)
	patchString(set, unset, "description", u.Description)
	patchString(set, unset, "internalNotes", u.InternalNotes)
	patchString(set, unset, "assignedRider", u.AssignedRider)
	patchValue(set, unset, "weight", u.Weight)
	patchValue(set, unset, "volume", u.Volume)
	patchValue(set, unset, "pickupTime", utcPatch(u.PickupTime))
	patchValue(set, unset, "deliveryTime", utcPatch(u.DeliveryTime))
	patchValue(set, unset, "expectedDeliveryTime", utcPatch(u.ExpectedDeliveryTime))
	if u.Mode.Set {
		if u.Mode.Null || u.Mode.Value == "" {
			unset["mode"] = ""
		} else {
			set["mode"] = string(u.Mode.Value)
		}
	}
	if u.Status.Set && !u.Status.Null {
		set["status"] = string(u.Status.Value)
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// patchString treats an empty string like null since empty optional strings are not stored.
func patchString(set, unset bson.M, field string, p domain.Patch[string]) {
	if !p.Set {
		return
	}
	if p.Null || p.Value == "" {
		unset[field] = ""
		return
	}
	set[field] = p.Value
}

func patchValue[T any](set, unset bson.M, field string, p domain.Patch[T]) {
	if !p.Set {
		return
	}
	if p.Null {
		unset[field] = ""
		return
	}
	set[field] = p.Value
}

func utcPatch(p domain.Patch[time.Time]) domain.Patch[time.Time] {
	if p.Set && !p.Null {
		p.Value = p.Value.UTC().Truncate(time.Millisecond)
	}
	return p
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
