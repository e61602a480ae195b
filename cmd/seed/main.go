// Command seed fills the data directory with a small demo dataset:
// an admin, a host with two listings, a guest with a confirmed stay and a
// review. Existing data files are replaced.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/vuyischool/Airbnb-app/internal/config"
	"github.com/vuyischool/Airbnb-app/internal/domain"
	"github.com/vuyischool/Airbnb-app/internal/modules/auth"
	"github.com/vuyischool/Airbnb-app/internal/modules/booking"
	"github.com/vuyischool/Airbnb-app/internal/modules/property"
	"github.com/vuyischool/Airbnb-app/internal/modules/review"
	"github.com/vuyischool/Airbnb-app/internal/pkg/session"
	"github.com/vuyischool/Airbnb-app/internal/repository"
	"github.com/vuyischool/Airbnb-app/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger()

	store := storage.NewStore(cfg.DataDir, logger)
	if !store.EnsureFiles() {
		log.Fatal("data directory is not writable")
	}
	for _, name := range []string{
		storage.UsersFile, storage.ListingsFile, storage.BookingsFile,
		storage.ReviewsFile, storage.MessagesFile,
	} {
		store.OverwriteAll(name, nil)
	}

	userRepo := repository.NewUserRepository(store)
	propertyRepo := repository.NewPropertyRepository(store)
	bookingRepo := repository.NewBookingRepository(store)
	reviewRepo := repository.NewReviewRepository(store)

	sessions := session.New(cfg.SessionSecret, cfg.SessionTTL)
	authSvc := auth.NewService(userRepo, sessions)
	propertySvc := property.NewService(propertyRepo, reviewRepo, bookingRepo)
	bookingSvc := booking.NewService(bookingRepo, propertyRepo)
	reviewSvc := review.NewService(reviewRepo, propertyRepo, propertySvc)

	ctx := context.Background()

	log.Println("Creating users...")
	admin, err := authSvc.Register(ctx, "admin", "admin@example.com", "admin123", domain.RoleAdmin)
	if err != nil {
		log.Fatal("seeding admin: ", err)
	}
	host, err := authSvc.Register(ctx, "marta_host", "marta@example.com", "hostpass", domain.RoleHost)
	if err != nil {
		log.Fatal("seeding host: ", err)
	}
	guest, err := authSvc.Register(ctx, "tom_guest", "tom@example.com", "guestpass", domain.RoleGuest)
	if err != nil {
		log.Fatal("seeding guest: ", err)
	}
	log.Printf("users: admin=%s host=%s guest=%s", admin.ID, host.ID, guest.ID)

	log.Println("Creating listings...")
	loft, err := propertySvc.Add(ctx, domain.Property{
		Title:       "Riverside Loft",
		Description: "Bright loft with a view over the river",
		Location:    "Belgrade",
		Price:       85,
		OwnerID:     host.ID,
	})
	if err != nil {
		log.Fatal("seeding loft: ", err)
	}
	cottage, err := propertySvc.Add(ctx, domain.Property{
		Title:       "Hillside Cottage",
		Description: "Quiet cottage twenty minutes from the old town",
		Location:    "Novi Sad",
		Price:       60,
		OwnerID:     host.ID,
	})
	if err != nil {
		log.Fatal("seeding cottage: ", err)
	}

	log.Println("Creating booking and review...")
	checkIn := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	if _, err := bookingSvc.Create(ctx, loft.ID, guest.ID, checkIn, checkIn.AddDate(0, 0, 4)); err != nil {
		log.Fatal("seeding booking: ", err)
	}
	if _, err := reviewSvc.Add(ctx, domain.Review{
		PropertyID: cottage.ID,
		UserID:     guest.ID,
		Rating:     5,
		Comment:    "Lovely place, very quiet",
	}); err != nil {
		log.Fatal("seeding review: ", err)
	}

	log.Printf("done, data in %s", store.Dir())
}
