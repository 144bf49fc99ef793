package attendees

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gatepass/backend/internal/models"
)

const collectionName = "attendees"

// Repository is the MongoDB-backed Store.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates an attendee repository on the given database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique manual-code index. Uniqueness of the
// fallback code is enforced here rather than by the generator.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "manualCode", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create manualCode index: %w", err)
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, a *models.Attendee) error {
	a.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateCode
		}
		return fmt.Errorf("insert attendee: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Attendee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave like unknown ids.
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *Repository) GetByManualCode(ctx context.Context, code string) (*models.Attendee, error) {
	return r.findOne(ctx, bson.M{"manualCode": code})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*models.Attendee, error) {
	var a models.Attendee
	err := r.coll.FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find attendee: %w", err)
	}
	return &a, nil
}

func (r *Repository) List(ctx context.Context) ([]models.Attendee, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer cur.Close(ctx)
	list := make([]models.Attendee, 0)
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode attendees: %w", err)
	}
	return list, nil
}

// Toggle flips the checkpoint status with a single pipeline update, so two
// concurrent scans cannot both observe the same prior state.
func (r *Repository) Toggle(ctx context.Context, id string, cp Checkpoint, at time.Time) (*models.Attendee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	statusField, timeField := "gateStatus", "lastGateUpdate"
	if cp == CheckpointWashroom {
		statusField, timeField = "washroomStatus", "lastWashroomUpdate"
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: statusField, Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$" + statusField, models.StatusIn}}},
				models.StatusOut,
				models.StatusIn,
			}}}},
			{Key: timeField, Value: at},
		}}},
	}

	var a models.Attendee
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", cp, err)
	}
	return &a, nil
}

func (r *Repository) Update(ctx context.Context, id string, p UpdateParams) (*models.Attendee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	addSet(set, "name", p.Name)
	addSet(set, "phone", p.Phone)
	addSet(set, "gender", p.Gender)
	addSet(set, "aadhaarNumber", p.AadhaarNumber)
	addSet(set, "address", p.Address)
	addSet(set, "carVoucherNumber", p.CarVoucherNumber)
	addSet(set, "carNumber", p.CarNumber)
	addSet(set, "zone", p.Zone)
	addSet(set, "serialNo", p.SerialNo)
	addSet(set, "zoneDay1", p.ZoneDay1)
	addSet(set, "zoneDay2", p.ZoneDay2)
	addSet(set, "gateStatus", p.GateStatus)
	addSet(set, "washroomStatus", p.WashroomStatus)
	if p.ReferredBy != nil {
		set["referredBy"] = *p.ReferredBy
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var a models.Attendee
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update attendee: %w", err)
	}
	return &a, nil
}

func (r *Repository) SetQRImageURL(ctx context.Context, id, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"qrImageUrl": url}})
	if err != nil {
		return fmt.Errorf("set qr image url: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func addSet(set bson.M, field string, v *string) {
	if v != nil {
		set[field] = *v
	}
}
