// application/serviceimpl/fakes_test.go
package serviceimpl

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vinachat/chat-api/domain/models"
	"gorm.io/gorm"
)

// In-memory repositories for service tests. They mirror the constraint
// behavior of the postgres implementations, including gorm.ErrRecordNotFound
// on misses.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) add(username string) *models.User {
	u := &models.User{
		ID:       r.nextID,
		Username: username,
		CustomID: username + "-custom-id-x",
	}
	r.users[u.ID] = u
	r.nextID++
	return u
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByIdentifier(identifier string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.CustomID == identifier {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Search(query string, excludeID uint, limit int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		if strings.Contains(u.Username, query) || strings.Contains(u.CustomID, query) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrCustomID(username, customID string) (bool, bool, error) {
	var usernameTaken, customIDTaken bool
	for _, u := range r.users {
		if u.Username == username {
			usernameTaken = true
		}
		if u.CustomID == customID {
			customIDTaken = true
		}
	}
	return usernameTaken, customIDTaken, nil
}

func (r *fakeUserRepo) UpdateAvatarURL(id uint, avatarURL string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.AvatarURL = avatarURL
	return nil
}

type fakeGroupRepo struct {
	groups  map[uint]*models.Group
	members map[uint]map[uint]*models.GroupMember
	nextID  uint
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:  make(map[uint]*models.Group),
		members: make(map[uint]map[uint]*models.GroupMember),
		nextID:  1,
	}
}

func (r *fakeGroupRepo) addGroup(name string, creatorID uint, memberIDs ...uint) *models.Group {
	g := &models.Group{ID: r.nextID, Name: name, CreatorID: creatorID}
	r.groups[g.ID] = g
	r.members[g.ID] = make(map[uint]*models.GroupMember)
	r.nextID++
	for _, id := range append([]uint{creatorID}, memberIDs...) {
		r.members[g.ID][id] = &models.GroupMember{GroupID: g.ID, UserID: id, JoinedAt: time.Now()}
	}
	return g
}

func (r *fakeGroupRepo) Create(group *models.Group) error {
	group.ID = r.nextID
	r.nextID++
	r.groups[group.ID] = group
	r.members[group.ID] = make(map[uint]*models.GroupMember)
	return nil
}

func (r *fakeGroupRepo) FindByID(id uint) (*models.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) Delete(id uint) error {
	delete(r.groups, id)
	delete(r.members, id)
	return nil
}

func (r *fakeGroupRepo) AddMember(member *models.GroupMember) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	r.members[member.GroupID][member.UserID] = member
	return nil
}

func (r *fakeGroupRepo) RemoveMember(groupID, userID uint) error {
	delete(r.members[groupID], userID)
	return nil
}

func (r *fakeGroupRepo) IsMember(groupID, userID uint) (bool, error) {
	_, ok := r.members[groupID][userID]
	return ok, nil
}

func (r *fakeGroupRepo) MemberIDs(groupID uint) ([]uint, error) {
	var ids []uint
	for id := range r.members[groupID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeGroupRepo) Members(groupID uint) ([]*models.GroupMember, []*models.User, error) {
	var rows []*models.GroupMember
	var users []*models.User
	for _, m := range r.members[groupID] {
		rows = append(rows, m)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	for _, m := range rows {
		users = append(users, &models.User{ID: m.UserID, Username: fmt.Sprintf("user-%d", m.UserID)})
	}
	return rows, users, nil
}

func (r *fakeGroupRepo) MemberCount(groupID uint) (int64, error) {
	return int64(len(r.members[groupID])), nil
}

func (r *fakeGroupRepo) FindByUserID(userID uint) ([]*models.Group, error) {
	var out []*models.Group
	for groupID, members := range r.members {
		if _, ok := members[userID]; ok {
			out = append(out, r.groups[groupID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMessageRepo struct {
	messages []*models.Message
	nextID   uint
	failNext error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	message.ID = r.nextID
	// Strictly increasing so ordering assertions never tie.
	message.Timestamp = time.Unix(1700000000, 0).Add(time.Duration(r.nextID) * time.Second)
	r.nextID++
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindDirectHistory(userID, otherID uint) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range r.messages {
		if m.ReceiverID == nil {
			continue
		}
		if (m.SenderID == userID && *m.ReceiverID == otherID) ||
			(m.SenderID == otherID && *m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) FindGroupHistory(groupID uint) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range r.messages {
		if m.GroupID != nil && *m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) LatestDirectMessages(userID uint) ([]*models.Message, error) {
	latest := make(map[uint]*models.Message)
	for _, m := range r.messages {
		if m.ReceiverID == nil {
			continue
		}
		var peer uint
		switch {
		case m.SenderID == userID:
			peer = *m.ReceiverID
		case *m.ReceiverID == userID:
			peer = m.SenderID
		default:
			continue
		}
		if prev, ok := latest[peer]; !ok || m.Timestamp.After(prev.Timestamp) {
			latest[peer] = m
		}
	}
	out := make([]*models.Message, 0, len(latest))
	for _, m := range latest {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

type fakeFriendshipRepo struct {
	friendships []*models.Friendship
	nextID      uint
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{nextID: 1}
}

func (r *fakeFriendshipRepo) Create(friendship *models.Friendship) error {
	friendship.ID = r.nextID
	friendship.CreatedAt = time.Now()
	r.nextID++
	r.friendships = append(r.friendships, friendship)
	return nil
}

func (r *fakeFriendshipRepo) FindByPair(userID, otherID uint) (*models.Friendship, error) {
	for _, f := range r.friendships {
		if (f.UserID1 == userID && f.UserID2 == otherID) ||
			(f.UserID1 == otherID && f.UserID2 == userID) {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFriendshipRepo) FindPendingRequest(requesterID, recipientID uint) (*models.Friendship, error) {
	for _, f := range r.friendships {
		if f.UserID1 == requesterID && f.UserID2 == recipientID && f.Status == models.FriendshipPending {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFriendshipRepo) UpdateStatus(id uint, status string) error {
	for _, f := range r.friendships {
		if f.ID == id {
			f.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeFriendshipRepo) FindAcceptedByUserID(userID uint) ([]*models.Friendship, error) {
	var out []*models.Friendship
	for _, f := range r.friendships {
		if f.Status == models.FriendshipAccepted && (f.UserID1 == userID || f.UserID2 == userID) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFriendshipRepo) FindPendingByRecipientID(userID uint) ([]*models.Friendship, error) {
	var out []*models.Friendship
	for _, f := range r.friendships {
		if f.Status == models.FriendshipPending && f.UserID2 == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFriendshipRepo) AreFriends(userID, otherID uint) (bool, error) {
	f, err := r.FindByPair(userID, otherID)
	if err != nil {
		return false, nil
	}
	return f.Status == models.FriendshipAccepted, nil
}

type fakeBlacklistRepo struct {
	tokens map[string]time.Time
}

func newFakeBlacklistRepo() *fakeBlacklistRepo {
	return &fakeBlacklistRepo{tokens: make(map[string]time.Time)}
}

func (r *fakeBlacklistRepo) Add(token string, expiresAt time.Time) error {
	r.tokens[token] = expiresAt
	return nil
}

func (r *fakeBlacklistRepo) IsBlacklisted(token string) (bool, error) {
	_, ok := r.tokens[token]
	return ok, nil
}

func (r *fakeBlacklistRepo) PurgeExpired() error {
	for token, expiresAt := range r.tokens {
		if expiresAt.Before(time.Now()) {
			delete(r.tokens, token)
		}
	}
	return nil
}

// fakeBroadcaster records every emission so tests can assert room keys,
// event names and recipient sets.

type roomEmission struct {
	Room  string
	Event string
	Data  interface{}
}

type userEmission struct {
	UserID uint
	Event  string
	Data   interface{}
}

type fakeBroadcaster struct {
	roomEvents []roomEmission
	userEvents []userEmission
}

func (b *fakeBroadcaster) BroadcastToRoom(roomKey, event string, data interface{}) {
	b.roomEvents = append(b.roomEvents, roomEmission{Room: roomKey, Event: event, Data: data})
}

func (b *fakeBroadcaster) BroadcastToUser(userID uint, event string, data interface{}) {
	b.userEvents = append(b.userEvents, userEmission{UserID: userID, Event: event, Data: data})
}

func (b *fakeBroadcaster) notifiedUsers() []uint {
	var ids []uint
	for _, e := range b.userEvents {
		ids = append(ids, e.UserID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
