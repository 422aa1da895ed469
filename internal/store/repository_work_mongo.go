package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// publicProjection hides the fields that must never leave the store through
// the listing endpoints.
var publicProjection = bson.D{
	{Key: "author", Value: 0},
	{Key: "contact", Value: 0},
}

var contactProjection = bson.D{{Key: "contact", Value: 1}}

// workDocument is the stored shape of a posting, minus author and contact.
type workDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Slug        string             `bson:"slug"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d workDocument) toModel() models.WorkRecord {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.WorkRecord{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Title:       d.Title,
		Description: d.Description,
		Tags:        tags,
		CreatedAt:   d.CreatedAt,
	}
}

type contactDocument struct {
	Contact bson.M `bson:"contact,omitempty"`
}

// mongoWorkRepository is the MongoDB-backed implementation of
// [WorkRepository] over the "praca" collection.
type mongoWorkRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoWorkRepository constructs a [WorkRepository] over coll.
func NewMongoWorkRepository(coll *mongo.Collection, logger *logger.Logger) WorkRepository {
	logger.Debug().Str("collection", coll.Name()).Msg("creating mongo work repository")
	return &mongoWorkRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoWorkRepository) FindWorks(ctx context.Context, cursor string, n int) ([]models.WorkRecord, error) {
	log := logger.FromContext(ctx)

	filter := bson.D{}
	if cursor != "" {
		oid, err := objectID(cursor)
		if err != nil {
			return nil, err
		}
		filter = bson.D{{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(n)).
		SetProjection(publicProjection)

	works, err := r.find(ctx, filter, opts)
	if err != nil {
		log.Err(err).Str("func", "mongoWorkRepository.FindWorks").Str("cursor", cursor).Msg("failed to list works")
		return nil, err
	}

	return works, nil
}

func (r *mongoWorkRepository) FindWorkByID(ctx context.Context, id string) (models.WorkRecord, error) {
	log := logger.FromContext(ctx)

	oid, err := objectID(id)
	if err != nil {
		return models.WorkRecord{}, err
	}

	var doc workDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, options.FindOne().SetProjection(publicProjection)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.WorkRecord{}, ErrWorkNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "mongoWorkRepository.FindWorkByID").Str("id", id).Msg("failed to find work")
		return models.WorkRecord{}, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	return doc.toModel(), nil
}

func (r *mongoWorkRepository) FindWorkContact(ctx context.Context, id string) (models.RawContact, error) {
	log := logger.FromContext(ctx)

	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc contactDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, options.FindOne().SetProjection(contactProjection)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWorkNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "mongoWorkRepository.FindWorkContact").Str("id", id).Msg("failed to find work contact")
		return nil, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	if doc.Contact == nil {
		return nil, nil
	}
	return models.RawContact(doc.Contact), nil
}

func (r *mongoWorkRepository) FindWorksByIDs(ctx context.Context, ids []string) ([]models.WorkRecord, error) {
	log := logger.FromContext(ctx)

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	works, err := r.find(ctx, filter, options.Find().SetProjection(publicProjection))
	if err != nil {
		log.Err(err).Str("func", "mongoWorkRepository.FindWorksByIDs").Int("ids", len(ids)).Msg("failed to find works by ids")
		return nil, err
	}

	return works, nil
}

func (r *mongoWorkRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]models.WorkRecord, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}
	defer cur.Close(ctx)

	var docs []workDocument
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	works := make([]models.WorkRecord, 0, len(docs))
	for _, doc := range docs {
		works = append(works, doc.toModel())
	}
	return works, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidWorkID, id)
	}
	return oid, nil
}
