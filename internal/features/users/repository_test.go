package users

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/publicvoice/api/pkg/errors"
)

func TestTranslateInsertErrorDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error collection: publicvoice.users"},
		},
	}

	err := translateInsertError(dup)

	// Handlers match on the sentinel, never on the message text.
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestTranslateInsertErrorOther(t *testing.T) {
	err := translateInsertError(errors.New("connection reset"))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
}
