//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/repository"
)

type CustomerRepositorySuite struct {
	suite.Suite
	customers *repository.CustomerRepo
	users     *repository.UserRepo
}

func (s *CustomerRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcDB, "tcDB must be initialized in TestMain")
	s.customers = repository.NewCustomerRepo(tcDB)
	s.users = repository.NewUserRepo(tcDB)
}

func (s *CustomerRepositorySuite) SetupTest() {
	ctx := context.Background()
	for _, name := range []string{repository.CustomersCollection, repository.UsersCollection} {
		_, err := tcDB.Collection(name).DeleteMany(ctx, bson.M{})
		s.Require().NoError(err)
	}
}

func (s *CustomerRepositorySuite) TestCustomerCreateListGet() {
	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()
	for _, c := range []*domain.Customer{
		{Name: "Zara Traders", Phone: "+8801711111111", Address: "Dhaka", CreatedBy: owner},
		{Name: "Amin", Phone: "+8801822222222", Address: "Khulna", BusinessName: "Amin & Sons"},
	} {
		s.Require().NoError(s.customers.Create(ctx, c))
		s.NotEmpty(c.ID)
	}

	all, err := s.customers.List(ctx, domain.CustomerFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Amin", all[0].Name)

	found, err := s.customers.List(ctx, domain.CustomerFilter{Search: "sons"})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("Amin & Sons", found[0].BusinessName)

	found, err = s.customers.List(ctx, domain.CustomerFilter{Search: "+88017"})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(owner, found[0].CreatedBy)

	got, err := s.customers.GetByID(ctx, all[1].ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Zara Traders", got.Name)

	missing, err := s.customers.GetByID(ctx, "not-an-id")
	s.Require().NoError(err)
	s.Nil(missing)

	byID, err := s.customers.GetByIDs(ctx, []string{all[0].ID, "junk", primitive.NewObjectID().Hex()})
	s.Require().NoError(err)
	s.Len(byID, 1)
	s.Contains(byID, all[0].ID)
}

func (s *CustomerRepositorySuite) TestUserCreateAndLookup() {
	ctx := context.Background()
	u := &domain.User{Email: " Owner@FastKart.io ", Name: "Owner", PasswordHash: "hash", Role: domain.RoleOwner}
	s.Require().NoError(s.users.Create(ctx, u))
	s.Equal("owner@fastkart.io", u.Email)

	got, err := s.users.GetByEmail(ctx, "OWNER@fastkart.io")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(u.ID, got.ID)
	s.Equal(domain.RoleOwner, got.Role)

	byID, err := s.users.GetByID(ctx, u.ID)
	s.Require().NoError(err)
	s.Require().NotNil(byID)

	err = s.users.Create(ctx, &domain.User{Email: "owner@fastkart.io", Role: domain.RoleAdmin})
	s.Require().ErrorIs(err, apperr.ErrConflict)

	none, err := s.users.GetByEmail(ctx, "nobody@fastkart.io")
	s.Require().NoError(err)
	s.Nil(none)
}

func TestCustomerRepositorySuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}
