package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

const paymentCheckConflict = "Payment with this check number already exists"

// PaymentService implements the domain operations for payments.
type PaymentService struct {
	db   *gorm.DB
	repo *repository.PaymentRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{db: db, repo: repo}
}

func (s *PaymentService) Add(payment *model.Payment) (*model.Payment, error) {
	if err := validation.Struct(payment); err != nil {
		return nil, err
	}
	payment.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Payment{}).Where(`"checkNumber" = ?`, payment.CheckNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.NewConflict("%s", paymentCheckConflict)
		}
		return translateDuplicate(s.repo.Save(tx, payment), paymentCheckConflict)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetAll() ([]model.Payment, error) {
	return s.repo.FindAll(s.db)
}

func (s *PaymentService) GetByID(id uint) (*model.Payment, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *PaymentService) GetByCustomerNumber(customerNumber string) ([]model.Payment, error) {
	return s.repo.FindByCustomerNumber(s.db, customerNumber)
}

// Update replaces every mutable field of the stored payment. A changed
// check number must not collide with another payment.
func (s *PaymentService) Update(id uint, incoming *model.Payment) (*model.Payment, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if incoming.CheckNumber != existing.CheckNumber {
			var count int64
			if err := tx.Model(&model.Payment{}).Where(`"checkNumber" = ? AND id <> ?`, incoming.CheckNumber, id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return apperr.NewConflict("%s", paymentCheckConflict)
			}
		}
		existing.CustomerNumber = incoming.CustomerNumber
		existing.CheckNumber = incoming.CheckNumber
		existing.PaymentDate = incoming.PaymentDate
		existing.Amount = incoming.Amount
		if err := translateDuplicate(s.repo.Save(tx, existing), paymentCheckConflict); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PaymentService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
