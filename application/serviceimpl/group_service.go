// application/serviceimpl/group_service.go
package serviceimpl

import (
	"errors"
	"strings"

	"github.com/vinachat/chat-api/domain/dto"
	"github.com/vinachat/chat-api/domain/models"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
	"github.com/vinachat/chat-api/pkg/apperrors"
	"gorm.io/gorm"
)

type groupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

func NewGroupService(
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
) service.GroupService {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

func (s *groupService) CreateGroup(creatorID uint, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidArg("group name must not be empty")
	}

	group := &models.Group{
		Name:      name,
		CreatorID: creatorID,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, apperrors.Internal("create group", err)
	}

	// The creator is always the first member.
	member := &models.GroupMember{GroupID: group.ID, UserID: creatorID}
	if err := s.groupRepo.AddMember(member); err != nil {
		return nil, apperrors.Internal("add creator membership", err)
	}
	return group, nil
}

func (s *groupService) AddMember(actorID, groupID, userID uint) error {
	if groupID == 0 || userID == 0 {
		return apperrors.InvalidArg("group id and user id must not be empty")
	}

	group, err := s.findGroup(groupID)
	if err != nil {
		return err
	}

	actorIsMember, err := s.groupRepo.IsMember(groupID, actorID)
	if err != nil {
		return apperrors.Internal("membership check", err)
	}
	if !actorIsMember && group.CreatorID != actorID {
		return apperrors.Forbidden("no permission to add members to this group")
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user does not exist")
		}
		return apperrors.Internal("load user", err)
	}

	alreadyMember, err := s.groupRepo.IsMember(groupID, userID)
	if err != nil {
		return apperrors.Internal("membership check", err)
	}
	if alreadyMember {
		return apperrors.AlreadyExists("user is already a member of this group")
	}

	member := &models.GroupMember{GroupID: groupID, UserID: userID}
	if err := s.groupRepo.AddMember(member); err != nil {
		return apperrors.Internal("add member", err)
	}
	return nil
}

func (s *groupService) RemoveMember(actorID, groupID, userID uint) error {
	if groupID == 0 || userID == 0 {
		return apperrors.InvalidArg("group id and user id must not be empty")
	}

	group, err := s.findGroup(groupID)
	if err != nil {
		return err
	}

	// The creator removes anyone; everyone else may only leave.
	if group.CreatorID != actorID && userID != actorID {
		return apperrors.Forbidden("no permission to remove members from this group")
	}
	if userID == group.CreatorID {
		return apperrors.InvalidArg("the group creator cannot be removed")
	}

	isMember, err := s.groupRepo.IsMember(groupID, userID)
	if err != nil {
		return apperrors.Internal("membership check", err)
	}
	if !isMember {
		return apperrors.NotFound("user is not a member of this group")
	}

	if err := s.groupRepo.RemoveMember(groupID, userID); err != nil {
		return apperrors.Internal("remove member", err)
	}
	return nil
}

func (s *groupService) DeleteGroup(actorID, groupID uint) error {
	if groupID == 0 {
		return apperrors.InvalidArg("group id must not be empty")
	}

	group, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	if group.CreatorID != actorID {
		return apperrors.Forbidden("only the group creator can delete the group")
	}

	if err := s.groupRepo.Delete(groupID); err != nil {
		return apperrors.Internal("delete group", err)
	}
	return nil
}

func (s *groupService) GetUserGroups(userID uint) ([]*dto.GroupDTO, error) {
	groups, err := s.groupRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal("load groups", err)
	}

	result := make([]*dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		count, err := s.groupRepo.MemberCount(group.ID)
		if err != nil {
			return nil, apperrors.Internal("count members", err)
		}
		result = append(result, &dto.GroupDTO{Group: group, MemberCount: count})
	}
	return result, nil
}

func (s *groupService) GetMembers(actorID, groupID uint) ([]*dto.GroupMemberDTO, error) {
	group, err := s.findGroup(groupID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.groupRepo.IsMember(groupID, actorID)
	if err != nil {
		return nil, apperrors.Internal("membership check", err)
	}
	if !isMember {
		return nil, apperrors.Forbidden("not a member of this group")
	}

	memberships, users, err := s.groupRepo.Members(groupID)
	if err != nil {
		return nil, apperrors.Internal("load members", err)
	}

	usersByID := make(map[uint]*models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	result := make([]*dto.GroupMemberDTO, 0, len(memberships))
	for _, m := range memberships {
		user, ok := usersByID[m.UserID]
		if !ok {
			continue
		}
		result = append(result, &dto.GroupMemberDTO{
			User:      user,
			JoinedAt:  m.JoinedAt,
			IsCreator: m.UserID == group.CreatorID,
		})
	}
	return result, nil
}

func (s *groupService) findGroup(groupID uint) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("group does not exist")
		}
		return nil, apperrors.Internal("load group", err)
	}
	return group, nil
}
