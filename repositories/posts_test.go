package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilterEmptyQueryMatchesAll(t *testing.T) {
	filter := searchFilter("")
	assert.Equal(t, bson.M{}, filter)
}

func TestSearchFilterBuildsCaseInsensitiveOr(t *testing.T) {
	filter := searchFilter("golang")

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "expected an $or filter")
	require.Len(t, or, 4)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, "golang", title.Pattern)
	assert.Equal(t, "i", title.Options)

	username := or[3].(bson.M)["author_username"].(primitive.Regex)
	assert.Equal(t, "golang", username.Pattern)
}

func TestSearchFilterStripsLeadingAtForUsername(t *testing.T) {
	filter := searchFilter("@alice")

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	username := or[3].(bson.M)["author_username"].(primitive.Regex)

	// The "@" stays in the text patterns but is stripped for the username.
	assert.Equal(t, "@alice", title.Pattern)
	assert.Equal(t, "alice", username.Pattern)
}

func TestSearchFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := searchFilter("c++ (tips)")

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(tips\)`, title.Pattern)
}

func TestNewestFirstOptionsSortByCreatedAtDesc(t *testing.T) {
	opts := newestFirstOptions()
	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, opts.Sort)
}
