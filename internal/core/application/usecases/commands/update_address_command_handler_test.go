package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	existing, err := address.NewAddress(kernel.NewUUID(), userID,
		"221B Baker Street", "", "London", "", "NW1 6XE", "GB", "", false, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateAddressCommand(existing.ID(), userID,
		address.Patch{City: strPtr("Cambridge")})
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAddressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Cambridge", existing.City())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateAddressCommandHandler_Handle_ForeignAddressIsNotFound(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	intruder := kernel.NewUUID()
	existing, err := address.NewAddress(kernel.NewUUID(), owner,
		"221B Baker Street", "", "London", "", "NW1 6XE", "GB", "", false, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateAddressCommand(existing.ID(), intruder,
		address.Patch{City: strPtr("Cambridge")})
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAddressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, "London", existing.City())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	existing, err := address.NewAddress(kernel.NewUUID(), userID,
		"221B Baker Street", "", "London", "", "NW1 6XE", "GB", "", false, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewRemoveAddressCommand(existing.ID(), userID)
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Remove", ctx, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveAddressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveAddressCommandHandler_Handle_AbsentAddress(t *testing.T) {
	ctx := t.Context()
	addressID := kernel.NewUUID()

	cmd, err := commands.NewRemoveAddressCommand(addressID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Get", ctx, addressID).
			Return(nil, errs.NewObjectNotFoundError("addressId", addressID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveAddressCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
