package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TranscriptRepo interface {
	SaveEntry(ctx context.Context, entry *TranscriptEntry) error
	GetConversation(ctx context.Context, conversationID string, limit int) ([]*TranscriptEntry, error)
	ListUserConversations(ctx context.Context, userID uint64, limit int) ([]string, error)
}

type transcriptRepoImpl struct {
	col *mongo.Collection
}

func NewTranscriptRepo(db *mongo.Database) TranscriptRepo {
	return &transcriptRepoImpl{
		col: db.Collection("transcript"),
	}
}

func (s *transcriptRepoImpl) SaveEntry(ctx context.Context, entry *TranscriptEntry) error {
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

// GetConversation returns the most recent entries of a conversation,
// oldest first so callers can replay them as chat history.
func (s *transcriptRepoImpl) GetConversation(ctx context.Context, conversationID string, limit int) ([]*TranscriptEntry, error) {
	filter := bson.M{"conversation_id": conversationID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*TranscriptEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	// reverse into chronological order
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}

func (s *transcriptRepoImpl) ListUserConversations(ctx context.Context, userID uint64, limit int) ([]string, error) {
	filter := bson.M{"user_id": userID}

	ids, err := s.col.Distinct(ctx, "conversation_id", filter)
	if err != nil {
		return nil, err
	}

	conversations := make([]string, 0, len(ids))
	for _, id := range ids {
		if str, ok := id.(string); ok {
			conversations = append(conversations, str)
		}
		if len(conversations) == limit {
			break
		}
	}

	return conversations, nil
}
