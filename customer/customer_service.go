package customer

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/google/uuid"
)

type Service struct {
	customers *store.Collection[Customer]
	clock     clock.Clock
}

func NewService(customers *store.Collection[Customer], clk clock.Clock) *Service {
	return &Service{customers: customers, clock: clk}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	customers, err := s.customers.All(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	slices.SortStableFunc(customers, func(a, b Customer) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return customers, nil
}

func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	customer, ok, err := s.customers.Find(ctx, id)

	if err != nil {
		return Customer{}, fmt.Errorf("failed to fetch customer with id %v: %w", id, err)
	}

	if !ok {
		return Customer{}, ErrCustomerNotFound
	}

	return customer, nil
}

// Search matches names case-insensitively. An empty query returns everyone.
func (s *Service) Search(ctx context.Context, query string) ([]Customer, error) {
	all, err := s.List(ctx)

	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))

	if term == "" {
		return all, nil
	}

	matches := []Customer{}

	for _, customer := range all {
		if strings.Contains(strings.ToLower(customer.Name), term) {
			matches = append(matches, customer)
		}
	}

	return matches, nil
}

// Save inserts or replaces a customer. New customers always get the next
// member number of the current year and existing numbers are never changed.
func (s *Service) Save(ctx context.Context, customer Customer) (Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)

	if customer.Name == "" {
		return Customer{}, fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}

	now := s.clock.Now()

	err := s.customers.Update(ctx, func(customers []Customer) ([]Customer, error) {
		for i, existing := range customers {
			if customer.ID != "" && existing.ID == customer.ID {
				customer.MemberNumber = existing.MemberNumber
				customer.CreatedAt = existing.CreatedAt
				customers[i] = customer
				return customers, nil
			}
		}

		if customer.ID == "" {
			customer.ID = uuid.NewString()
		}

		customer.MemberNumber = NextMemberNumber(customers, now.Year())

		if customer.CreatedAt.IsZero() {
			customer.CreatedAt = now
		}

		return append(customers, customer), nil
	})

	if err != nil {
		return Customer{}, fmt.Errorf("failed to save customer: %w", err)
	}

	return customer, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.customers.Delete(ctx, id)

	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if n == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// NextMemberNumber returns "YY-NN" following the highest number already
// issued in year.
func NextMemberNumber(customers []Customer, year int) string {
	prefix := fmt.Sprintf("%02d-", year%100)
	highest := 0

	for _, customer := range customers {
		seq, ok := strings.CutPrefix(customer.MemberNumber, prefix)

		if !ok {
			continue
		}

		n, err := strconv.Atoi(seq)

		if err == nil && n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%v%02d", prefix, highest+1)
}
