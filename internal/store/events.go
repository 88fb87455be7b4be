package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/switchback8195-code/Linkandlearnlabs/internal/apperror"
	"github.com/switchback8195-code/Linkandlearnlabs/internal/models"
)

// EventStore handles the events collection.
type EventStore struct {
	col *mongo.Collection
}

func NewEventStore(db *mongo.Database) *EventStore {
	return &EventStore{col: db.Collection(colEvents)}
}

func (s *EventStore) List(ctx context.Context) ([]models.Event, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	events := []models.Event{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (s *EventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var ev models.Event
	err := s.col.FindOne(ctx, byID(id)).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("event")
	}
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &ev, nil
}

// Register adds userID to the event as one conditional update: the filter
// matches only while the user is absent from registered_users AND attendees
// is below capacity, and the update applies the counter increment and the
// set append together. Two concurrent registrations can therefore never
// overshoot maxAttendees or double-insert a user; the losing request matches
// zero documents and a second read disambiguates the rejection.
//
// maxAttendees never changes after event creation, so pinning the capacity
// bound from the initial read is race-free.
func (s *EventStore) Register(ctx context.Context, eventID, userID string) (*models.Event, error) {
	ev, err := s.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"id":               eventID,
		"registered_users": bson.M{"$ne": userID},
		"attendees":        bson.M{"$lt": ev.MaxAttendees},
	}
	update := bson.M{
		"$inc":  bson.M{"attendees": 1},
		"$push": bson.M{"registered_users": userID},
	}

	res, err := s.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("register for event: %w", err)
	}

	if res.MatchedCount == 0 {
		// The guard refused; re-read to tell the two rejections apart.
		ev, err = s.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		for _, id := range ev.RegisteredUsers {
			if id == userID {
				return nil, apperror.Conflict("already registered")
			}
		}
		return nil, apperror.Conflict("event is full")
	}

	return s.GetByID(ctx, eventID)
}
