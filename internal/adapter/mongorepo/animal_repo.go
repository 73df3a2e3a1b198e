package mongorepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/infra"
)

// AnimalRepository implements domain.AnimalRepository on a MongoDB collection.
type AnimalRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewAnimalRepository binds the repository to the animals collection of db.
func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{coll: db.Collection(infra.AnimalsCollection), now: utcNow}
}

func (r *AnimalRepository) Create(ctx context.Context, animal *domain.Animal) error {
	ts := r.now()
	animal.CreatedAt = ts
	animal.UpdatedAt = ts
	if _, err := r.coll.InsertOne(ctx, animal); err != nil {
		return err
	}
	return nil
}

func (r *AnimalRepository) List(ctx context.Context) ([]domain.Animal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	items := []domain.Animal{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AnimalRepository) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	var a domain.Animal
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

// Update overwrites the writable fields. A nil category keeps the stored value.
func (r *AnimalRepository) Update(ctx context.Context, id string, in domain.AnimalInput) (*domain.Animal, error) {
	set := bson.D{
		{Key: "name", Value: in.Name},
		{Key: "description", Value: in.Description},
		{Key: "imageUrl", Value: in.ImageURL},
		{Key: "type", Value: in.Type},
		{Key: "updatedAt", Value: r.now()},
	}
	if in.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *in.Category})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a domain.Animal
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&a)
	if err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *AnimalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AnimalRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return err
}

// Mongo stores milliseconds; truncating keeps returned values equal to stored ones.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

var _ domain.AnimalRepository = (*AnimalRepository)(nil)
