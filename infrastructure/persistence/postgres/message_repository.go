// infrastructure/persistence/postgres/message_repository.go
package postgres

import (
	"time"

	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	return r.db.Create(message).Error
}

func (r *messageRepository) FindDirectHistory(userID, otherID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("timestamp asc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindGroupHistory(groupID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Where("group_id = ?", groupID).
		Order("timestamp asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// LatestDirectMessages picks the newest message per peer with DISTINCT ON,
// then orders conversations newest first.
func (r *messageRepository) LatestDirectMessages(userID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Raw(`
		SELECT * FROM (
			SELECT DISTINCT ON (peer) * FROM (
				SELECT m.*,
					CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END AS peer
				FROM messages m
				WHERE m.group_id IS NULL AND (m.sender_id = ? OR m.receiver_id = ?)
			) sub
			ORDER BY peer, timestamp DESC
		) latest
		ORDER BY timestamp DESC`,
		userID, userID, userID,
	).Scan(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
