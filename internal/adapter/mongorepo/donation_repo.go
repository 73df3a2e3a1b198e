package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"aidforpaws/internal/domain"
	"aidforpaws/internal/infra"
)

// DonationRepository implements domain.DonationRepository on MongoDB. The
// animal reference is resolved with a $lookup against the animals collection.
type DonationRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{coll: db.Collection(infra.DonationsCollection), now: utcNow}
}

// Create inserts the donation. The unique paymentId index turns replays into
// domain.ErrDuplicatePayment.
func (r *DonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	donation.CreatedAt = r.now()
	if _, err := r.coll.InsertOne(ctx, donation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicatePayment
		}
		return err
	}
	return nil
}

func (r *DonationRepository) ListRecent(ctx context.Context) ([]domain.Donation, error) {
	return r.aggregate(ctx, nil)
}

func (r *DonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	return r.one(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *DonationRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Donation, error) {
	return r.one(ctx, bson.D{{Key: "paymentId", Value: paymentID}})
}

func (r *DonationRepository) ListDangling(ctx context.Context) ([]domain.Donation, error) {
	items, err := r.aggregate(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := []domain.Donation{}
	for _, d := range items {
		if d.Animal == nil {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *DonationRepository) Summary(ctx context.Context) (domain.DonationSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.DonationSummary{}, err
	}
	var rows []struct {
		Count int64   `bson:"count"`
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return domain.DonationSummary{}, err
	}
	if len(rows) == 0 {
		return domain.DonationSummary{}, nil
	}
	return domain.DonationSummary{Count: rows[0].Count, TotalAmount: rows[0].Total}, nil
}

type populatedDonation struct {
	domain.Donation `bson:",inline"`
	AnimalDocs      []domain.Animal `bson:"animalDoc"`
}

func (r *DonationRepository) one(ctx context.Context, match bson.D) (*domain.Donation, error) {
	items, err := r.aggregate(ctx, match)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return &items[0], nil
}

// aggregate runs match (or a full scan, newest first) and resolves each
// animal reference.
func (r *DonationRepository) aggregate(ctx context.Context, match bson.D) ([]domain.Donation, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	} else {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
			{Key: "createdAt", Value: -1},
			{Key: "_id", Value: -1},
		}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: infra.AnimalsCollection},
		{Key: "localField", Value: "animal"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "animalDoc"},
	}}})

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []populatedDonation
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	items := make([]domain.Donation, 0, len(rows))
	for _, row := range rows {
		d := row.Donation
		if len(row.AnimalDocs) > 0 {
			a := row.AnimalDocs[0]
			d.Populate(&a)
		} else {
			d.Populate(nil)
		}
		items = append(items, d)
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepository)(nil)
