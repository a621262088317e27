package report

import "context"

type Service interface {
	BuildReport(ctx context.Context) (*Report, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) BuildReport(ctx context.Context) (*Report, error) {
	sales, err := s.repo.SalesByDate(ctx)
	if err != nil {
		return nil, err
	}

	demand, err := s.repo.DemandTrends(ctx)
	if err != nil {
		return nil, err
	}

	if sales == nil {
		sales = []SalesRow{}
	}
	if demand == nil {
		demand = []DemandRow{}
	}

	return &Report{SalesReport: sales, DemandTrends: demand}, nil
}
