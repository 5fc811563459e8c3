package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/birthdaybook/birthday-api/internal/core/domain"
	"github.com/birthdaybook/birthday-api/internal/pkg/dates"
)

var errInvalidBirthdayID = domain.Validation("invalid birthday id")

type BirthdayRepository struct {
	col *mongo.Collection
}

func NewBirthdayRepository(db *mongo.Database) *BirthdayRepository {
	return &BirthdayRepository{col: db.Collection(collectionBirthdays)}
}

type mongoBirthday struct {
	ID                primitive.ObjectID   `bson:"_id,omitempty"`
	Owner             primitive.ObjectID   `bson:"owner"`
	Birthday          time.Time            `bson:"birthday"`
	UpcomingBirthdays []primitive.ObjectID `bson:"upcomingBirthdays,omitempty"`
	CreatedAt         time.Time            `bson:"createdAt"`
	UpdatedAt         time.Time            `bson:"updatedAt"`
}

func (b mongoBirthday) toDomain() *domain.Birthday {
	upcoming := make([]string, 0, len(b.UpcomingBirthdays))
	for _, id := range b.UpcomingBirthdays {
		upcoming = append(upcoming, id.Hex())
	}
	return &domain.Birthday{
		ID:                b.ID.Hex(),
		Owner:             b.Owner.Hex(),
		Date:              b.Birthday.UTC(),
		UpcomingBirthdays: upcoming,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// birthdayWithOwner is the shape produced by the owner lookup pipeline.
type birthdayWithOwner struct {
	ID       primitive.ObjectID `bson:"_id"`
	Owner    primitive.ObjectID `bson:"owner"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Birthday time.Time          `bson:"birthday"`
}

func (b birthdayWithOwner) toDomain() domain.BirthdayDetail {
	return domain.BirthdayDetail{
		ID:       b.ID.Hex(),
		Owner:    b.Owner.Hex(),
		Username: b.Username,
		Email:    b.Email,
		Date:     b.Birthday.UTC(),
	}
}

func (r *BirthdayRepository) Create(ctx context.Context, b *domain.Birthday) (*domain.Birthday, error) {
	owner, err := primitive.ObjectIDFromHex(b.Owner)
	if err != nil {
		return nil, domain.Validation("invalid owner id")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBirthday{
		Owner:     owner,
		Birthday:  b.Date.UTC(),
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBirthdayExists
		}
		return nil, fmt.Errorf("insert birthday: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *BirthdayRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Birthday, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrBirthdayNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoBirthday
	if err := r.col.FindOne(ctx, bson.M{"owner": owner}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBirthdayNotFound
		}
		return nil, fmt.Errorf("find birthday: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BirthdayRepository) UpdateDate(ctx context.Context, id string, date time.Time) (*domain.Birthday, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errInvalidBirthdayID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"birthday": date.UTC(), "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoBirthday
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBirthdayNotFound
		}
		return nil, fmt.Errorf("update birthday: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BirthdayRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errInvalidBirthdayID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete birthday: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBirthdayNotFound
	}
	return nil
}

func (r *BirthdayRepository) FindDetail(ctx context.Context, id string) (*domain.BirthdayDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errInvalidBirthdayID
	}

	out, err := r.aggregateWithOwners(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrBirthdayNotFound
	}
	return &out[0], nil
}

func (r *BirthdayRepository) ListWithOwners(ctx context.Context) ([]domain.BirthdayDetail, error) {
	return r.aggregateWithOwners(ctx, nil)
}

// FindByMonthDay matches on the stored date's UTC month and day.
func (r *BirthdayRepository) FindByMonthDay(ctx context.Context, days []dates.MonthDay) ([]domain.BirthdayDetail, error) {
	if len(days) == 0 {
		return nil, nil
	}

	anyOf := make(bson.A, 0, len(days))
	for _, md := range days {
		anyOf = append(anyOf, bson.M{"$and": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$month": bson.M{"date": "$birthday", "timezone": "UTC"}}, int(md.Month)}},
			bson.M{"$eq": bson.A{bson.M{"$dayOfMonth": bson.M{"date": "$birthday", "timezone": "UTC"}}, md.Day}},
		}})
	}
	return r.aggregateWithOwners(ctx, bson.D{{Key: "$expr", Value: bson.M{"$or": anyOf}}})
}

// aggregateWithOwners joins birthdays to their owners. Birthdays whose owner
// no longer exists are dropped by the unwind.
func (r *BirthdayRepository) aggregateWithOwners(ctx context.Context, match bson.D) ([]domain.BirthdayDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "ownerDoc",
		}}},
		bson.D{{Key: "$unwind", Value: "$ownerDoc"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":      1,
			"owner":    1,
			"birthday": 1,
			"username": "$ownerDoc.username",
			"email":    "$ownerDoc.email",
		}}},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate birthdays: %w", err)
	}
	defer cur.Close(ctx)

	var docs []birthdayWithOwner
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode birthdays: %w", err)
	}

	out := make([]domain.BirthdayDetail, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
