// Package listing отдаёт объявления для загрузки в базу.
// Реального парсинга нет, источник возвращает фиксированную выборку.
package listing

import (
	"context"
	"slices"
	"time"

	"deal_factory/internal/domain/entity"
)

var sampleListings = []entity.Property{ //nolint:gochecknoglobals // skip
	{
		Address:      "1706 N 25th St, Philadelphia, PA 19121",
		ZipCode:      "19121",
		Price:        460000,
		Units:        5,
		MonthlyRent:  5500,
		DaysOnMarket: 45,
		Images:       []string{"https://example.com/property1.jpg"},
		Description:  "5-unit multi-family in Temple area",
	},
	{
		Address:         "2145 N Broad St, Philadelphia, PA 19122",
		ZipCode:         "19122",
		Price:           385000,
		Units:           4,
		MonthlyRent:     4200,
		DaysOnMarket:    210,
		OpportunityZone: true,
		Images:          []string{"https://example.com/property2.jpg"},
		Description:     "4-unit building in Opportunity Zone",
	},
	{
		Address:      "312 S 15th St, Philadelphia, PA 19102",
		ZipCode:      "19102",
		Price:        850000,
		Units:        3,
		MonthlyRent:  7500,
		DaysOnMarket: 15,
		Images:       []string{"https://example.com/property3.jpg"},
		Description:  "Center City triplex",
	},
	{
		Address:      "4521 Frankford Ave, Philadelphia, PA 19124",
		ZipCode:      "19124",
		Price:        295000,
		Units:        6,
		MonthlyRent:  4800,
		DaysOnMarket: 120,
		Images:       []string{"https://example.com/property4.jpg"},
		Description:  "6-unit in Frankford",
	},
	{
		Address:         "1523 W Susquehanna Ave, Philadelphia, PA 19121",
		ZipCode:         "19121",
		Price:           340000,
		Units:           4,
		MonthlyRent:     4000,
		DaysOnMarket:    95,
		OpportunityZone: true,
		Images:          []string{"https://example.com/property5.jpg"},
		Description:     "4-unit with cash flow potential",
	},
}

// SampleSource статический источник объявлений по Филадельфии.
type SampleSource struct {
	now func() time.Time
}

func NewSampleSource(now func() time.Time) *SampleSource {
	if now == nil {
		now = time.Now
	}
	return &SampleSource{now: now}
}

// Listings возвращает копии объявлений с текущим временем выгрузки.
func (s *SampleSource) Listings(ctx context.Context) ([]entity.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scrapedAt := s.now().UTC()

	result := make([]entity.Property, 0, len(sampleListings))
	for _, p := range sampleListings {
		p.Images = slices.Clone(p.Images)
		p.ScrapedAt = scrapedAt
		result = append(result, p)
	}

	return result, nil
}
