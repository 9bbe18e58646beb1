package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"digital-storefront/internal/models"

	"github.com/google/uuid"
)

// SeedProducts populates the catalog with sample products when it is
// empty. It is idempotent and runs once at process bootstrap, before
// the server accepts traffic.
func SeedProducts(ctx context.Context, repo ProductRepository, log *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}

	if count > 0 {
		log.Debug("catalog already seeded", "products", count)
		return nil
	}

	products := SampleProducts(time.Now().UTC())
	if err := repo.InsertMany(ctx, products); err != nil {
		return fmt.Errorf("insert sample products: %w", err)
	}

	log.Info("created sample products", "count", len(products))
	return nil
}

// SampleProducts returns the initial catalog: two resume templates, two
// learning ebooks and two storybooks.
func SampleProducts(createdAt time.Time) []models.Product {
	return []models.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Professional Resume Template",
			Description: "Modern, ATS-friendly resume template perfect for job seekers. Includes cover letter template.",
			Category:    "resume",
			Price:       5.0,
			ImageURL:    "https://images.unsplash.com/photo-1743385779347-1549dabf1320",
			CreatedAt:   createdAt,
			FileContent: strPtr("Sample resume template content..."),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Creative Resume Template",
			Description: "Eye-catching resume template for creative professionals. Stand out from the crowd!",
			Category:    "resume",
			Price:       5.0,
			ImageURL:    "https://images.unsplash.com/photo-1753161029492-0644556055cf",
			CreatedAt:   createdAt,
			FileContent: strPtr("Sample creative resume template..."),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Counting Fun eBook",
			Description: "Interactive counting book for toddlers (ages 2-4). Learn numbers 1-20 with colorful illustrations.",
			Category:    "ebook",
			Price:       5.0,
			ImageURL:    "https://images.unsplash.com/photo-1718353097521-e47e1d67edc2",
			CreatedAt:   createdAt,
			FileContent: strPtr("Sample counting ebook content..."),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Alphabet Adventure eBook",
			Description: "Learn the alphabet with fun characters and rhymes. Perfect for early readers!",
			Category:    "ebook",
			Price:       5.0,
			ImageURL:    "https://images.pexels.com/photos/7946399/pexels-photo-7946399.jpeg",
			CreatedAt:   createdAt,
			FileContent: strPtr("Sample alphabet ebook content..."),
		},
		{
			ID:          uuid.NewString(),
			Name:        "The Magic Forest Story",
			Description: "An enchanting bedtime story about friendship and adventure in a magical forest.",
			Category:    "storybook",
			Price:       10.0,
			ImageURL:    "https://images.pexels.com/photos/6214388/pexels-photo-6214388.jpeg",
			CreatedAt:   createdAt,
			FileContent: strPtr("Sample storybook content..."),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Little Dragon's Big Day",
			Description: "A heartwarming story about courage and friendship. Perfect for bedtime reading!",
			Category:    "storybook",
			Price:       10.0,
			ImageURL:    "https://images.pexels.com/photos/7946399/pexels-photo-7946399.jpeg",
			CreatedAt:   createdAt,
			FileContent: strPtr("Sample dragon storybook content..."),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
