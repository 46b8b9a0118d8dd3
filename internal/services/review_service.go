package services

import (
	"errors"

	"ubishop/internal/discovery"
	"ubishop/internal/domain"
	"ubishop/internal/repos"
)

var (
	ErrInvalidRating = errors.New("rating must be 1..5 or a known label")
	ErrNotAuthor     = errors.New("not the review author")
)

type ReviewService struct {
	Reviews *repos.ReviewRepo
	Prods   *repos.ProductRepo
}

func NewReviewService(reviews *repos.ReviewRepo, prods *repos.ProductRepo) *ReviewService {
	return &ReviewService{Reviews: reviews, Prods: prods}
}

func (s *ReviewService) List() ([]domain.Review, error) { return s.Reviews.List() }

func (s *ReviewService) ByProduct(productID int) ([]repos.ReviewWithAuthor, error) {
	return s.Reviews.ByProduct(productID)
}

// Create validates the rating before it reaches storage; unmappable ratings
// only exist in legacy rows, never via this path.
func (s *ReviewService) Create(authorID, productID int, rating, comment string) (domain.Review, error) {
	if !discovery.ValidRating(rating) {
		return domain.Review{}, ErrInvalidRating
	}
	if _, err := s.Prods.ByID(productID); err != nil {
		return domain.Review{}, err
	}
	rv := domain.Review{UserID: authorID, ProductID: productID, Rating: rating, Comment: comment}
	id, err := s.Reviews.Create(rv)
	if err != nil {
		return domain.Review{}, err
	}
	rv.ReviewID = id
	return rv, nil
}

func (s *ReviewService) Update(authorID, reviewID int, rating, comment string) error {
	if !discovery.ValidRating(rating) {
		return ErrInvalidRating
	}
	rv, err := s.Reviews.ByID(reviewID)
	if err != nil {
		return err
	}
	if rv.UserID != authorID {
		return ErrNotAuthor
	}
	_, err = s.Reviews.Update(reviewID, rating, comment)
	return err
}

func (s *ReviewService) Delete(authorID, reviewID int) error {
	rv, err := s.Reviews.ByID(reviewID)
	if err != nil {
		return err
	}
	if rv.UserID != authorID {
		return ErrNotAuthor
	}
	_, err = s.Reviews.Delete(reviewID)
	return err
}
