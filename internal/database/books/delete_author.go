package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/librarian/internal/database"
)

// CountByAuthor returns how many books reference the author. A missing books
// table counts as zero.
func (r *Repository) CountByAuthor(authorID int64) (int64, error) {
	if !r.db.Migrator().HasTable(&Row{}) {
		return 0, nil
	}
	var count int64
	if err := r.db.Model(&Row{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count books of author %d: %w", authorID, err)
	}
	return count, nil
}

// DeleteAuthor removes an author while keeping books consistent with the
// policy. DeleteRestrict leaves everything in place and reports
// DeleteStatusBlocked when books still reference the author. DeleteCascade
// removes those books together with the author. The whole operation runs in
// one transaction.
func (r *Repository) DeleteAuthor(authorID int64, policy database.DeletePolicy) (database.DeleteResult, error) {
	if _, err := database.ParseDeletePolicy(string(policy)); err != nil {
		return database.DeleteResult{}, err
	}

	var result database.DeleteResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := r.withTx(tx)

		exists, err := txRepo.authors.Exists(authorID)
		if err != nil {
			return err
		}
		if !exists {
			result = database.DeleteResult{Status: database.DeleteStatusNotFound}
			return nil
		}

		dependents, err := txRepo.CountByAuthor(authorID)
		if err != nil {
			return err
		}

		if dependents > 0 {
			if policy != database.DeleteCascade {
				result = database.DeleteResult{Status: database.DeleteStatusBlocked, Dependents: dependents}
				return nil
			}
			if err := tx.Where("author_id = ?", authorID).Delete(&Row{}).Error; err != nil {
				return fmt.Errorf("failed to delete books of author %d: %w", authorID, err)
			}
		}

		deleted, err := txRepo.authors.DeleteByID(authorID)
		if err != nil {
			return err
		}
		result = database.DeleteResult{Status: deleted.Status, Dependents: dependents}
		return nil
	})
	if err != nil {
		return database.DeleteResult{}, err
	}
	return result, nil
}
