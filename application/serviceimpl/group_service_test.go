// application/serviceimpl/group_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinachat/chat-api/pkg/apperrors"
)

func newGroupFixture(t *testing.T) (*fakeUserRepo, *fakeGroupRepo, *groupService) {
	t.Helper()
	users := newFakeUserRepo()
	groups := newFakeGroupRepo()
	svc := NewGroupService(groups, users).(*groupService)
	return users, groups, svc
}

func TestCreateGroupAddsCreatorAsMember(t *testing.T) {
	users, groups, svc := newGroupFixture(t)
	creator := users.add("creator")

	group, err := svc.CreateGroup(creator.ID, "weekend plans")
	require.NoError(t, err)
	assert.Equal(t, creator.ID, group.CreatorID)

	isMember, err := groups.IsMember(group.ID, creator.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestCreateGroupRejectsEmptyName(t *testing.T) {
	users, _, svc := newGroupFixture(t)
	creator := users.add("creator")

	_, err := svc.CreateGroup(creator.ID, "   ")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
}

func TestAddMember(t *testing.T) {
	users, groups, svc := newGroupFixture(t)
	creator := users.add("creator")
	member := users.add("member")
	newcomer := users.add("newcomer")
	outsider := users.add("outsider")
	group := groups.addGroup("team", creator.ID, member.ID)

	// Any member may add, not only the creator.
	require.NoError(t, svc.AddMember(member.ID, group.ID, newcomer.ID))
	isMember, _ := groups.IsMember(group.ID, newcomer.ID)
	assert.True(t, isMember)

	err := svc.AddMember(member.ID, group.ID, newcomer.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))

	err = svc.AddMember(outsider.ID, group.ID, outsider.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePermissionDenied, apperrors.CodeOf(err))

	err = svc.AddMember(creator.ID, group.ID, 99)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	err = svc.AddMember(creator.ID, 99, newcomer.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestRemoveMember(t *testing.T) {
	users, groups, svc := newGroupFixture(t)
	creator := users.add("creator")
	first := users.add("first")
	second := users.add("second")
	group := groups.addGroup("team", creator.ID, first.ID, second.ID)

	// A plain member may only remove themselves.
	err := svc.RemoveMember(first.ID, group.ID, second.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePermissionDenied, apperrors.CodeOf(err))

	require.NoError(t, svc.RemoveMember(first.ID, group.ID, first.ID))
	isMember, _ := groups.IsMember(group.ID, first.ID)
	assert.False(t, isMember)

	// The creator removes anyone but can never be removed.
	require.NoError(t, svc.RemoveMember(creator.ID, group.ID, second.ID))
	err = svc.RemoveMember(creator.ID, group.ID, creator.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))

	err = svc.RemoveMember(creator.ID, group.ID, second.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestDeleteGroupCreatorOnly(t *testing.T) {
	users, groups, svc := newGroupFixture(t)
	creator := users.add("creator")
	member := users.add("member")
	group := groups.addGroup("team", creator.ID, member.ID)

	err := svc.DeleteGroup(member.ID, group.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePermissionDenied, apperrors.CodeOf(err))

	require.NoError(t, svc.DeleteGroup(creator.ID, group.ID))
	_, err = groups.FindByID(group.ID)
	require.Error(t, err)
}

func TestGetUserGroupsReportsMemberCounts(t *testing.T) {
	users, groups, svc := newGroupFixture(t)
	creator := users.add("creator")
	member := users.add("member")
	groups.addGroup("solo", creator.ID)
	groups.addGroup("pair", creator.ID, member.ID)

	result, err := svc.GetUserGroups(creator.ID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].MemberCount)
	assert.Equal(t, int64(2), result[1].MemberCount)

	result, err = svc.GetUserGroups(member.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "pair", result[0].Name)
}

func TestGetMembersMembersOnly(t *testing.T) {
	users, groups, svc := newGroupFixture(t)
	creator := users.add("creator")
	member := users.add("member")
	outsider := users.add("outsider")
	group := groups.addGroup("team", creator.ID, member.ID)

	_, err := svc.GetMembers(outsider.ID, group.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePermissionDenied, apperrors.CodeOf(err))

	result, err := svc.GetMembers(member.ID, group.ID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].IsCreator)
	assert.False(t, result[1].IsCreator)
}
