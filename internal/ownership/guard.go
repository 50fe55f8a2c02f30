// Package ownership confirms that the acting user owns the character an
// entity hangs off. Every check answers NotFound both for ids that do not
// exist and for ids owned by someone else, so callers cannot probe for
// other users' data.
//
// Checks take a database.Querier and are meant to run on the transaction of
// the operation they protect.
package ownership

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/KirkDiggler/rpg-sheets/internal/database"
	"github.com/KirkDiggler/rpg-sheets/internal/entities"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// Scope is the character an operation acts on and the user acting
type Scope struct {
	UserID      int64
	CharacterID int64
}

// Validate checks both ids are set
func (s Scope) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveID("user_id", s.UserID, vb)
	errors.ValidatePositiveID("character_id", s.CharacterID, vb)
	return vb.Build()
}

const characterQuery = `SELECT 1 FROM characters WHERE id = ? AND user_id = ?`

// CheckCharacter confirms the scope's user owns the scope's character
func CheckCharacter(ctx context.Context, q database.Querier, scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	err := exists(ctx, q, characterQuery, scope.CharacterID, scope.UserID)
	if err != nil {
		return decorate(err, "character not found").
			WithMeta("character_id", scope.CharacterID)
	}
	return nil
}

// CheckAttachment confirms the attachment belongs to the scope's character
// and the character belongs to the scope's user
func CheckAttachment(ctx context.Context, q database.Querier, kind entities.AttachmentKind, attachmentID int64, scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	tables, err := database.TablesFor(kind)
	if err != nil {
		return err
	}

	err = checkChild(ctx, q, tables.Attachments, attachmentID, scope)
	if err != nil {
		return decorate(err, fmt.Sprintf("%s not found", kind)).
			WithMeta("character_id", scope.CharacterID).
			WithMeta(string(kind)+"_id", attachmentID)
	}
	return nil
}

// CheckCurrency confirms the currency belongs to the scope's character and
// the character belongs to the scope's user
func CheckCurrency(ctx context.Context, q database.Querier, currencyID int64, scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	err := checkChild(ctx, q, "currencies", currencyID, scope)
	if err != nil {
		return decorate(err, "currency not found").
			WithMeta("character_id", scope.CharacterID).
			WithMeta("currency_id", currencyID)
	}
	return nil
}

// CheckModifier confirms the modifier sits on an attachment of the scope's
// character and the character belongs to the scope's user
func CheckModifier(ctx context.Context, q database.Querier, kind entities.AttachmentKind, modifierID int64, scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	tables, err := database.TablesFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`SELECT 1 FROM %s p
		JOIN %s a ON a.id = p.%s
		JOIN characters c ON c.id = a.character_id
		WHERE p.id = ? AND a.character_id = ? AND c.user_id = ?`,
		tables.Modifiers, tables.Attachments, tables.ForeignKey)

	err = exists(ctx, q, query, modifierID, scope.CharacterID, scope.UserID)
	if err != nil {
		return decorate(err, "modifier not found").
			WithMeta("character_id", scope.CharacterID).
			WithMeta("modifier_id", modifierID)
	}
	return nil
}

func checkChild(ctx context.Context, q database.Querier, table string, id int64, scope Scope) error {
	query := fmt.Sprintf(`SELECT 1 FROM %s a
		JOIN characters c ON c.id = a.character_id
		WHERE a.id = ? AND a.character_id = ? AND c.user_id = ?`, table)
	return exists(ctx, q, query, id, scope.CharacterID, scope.UserID)
}

func exists(ctx context.Context, q database.Querier, query string, args ...any) error {
	var one int
	return q.QueryRowContext(ctx, query, args...).Scan(&one)
}

func decorate(err error, notFound string) *errors.Error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFound(notFound)
	}
	return errors.Wrap(err, "ownership check failed")
}
