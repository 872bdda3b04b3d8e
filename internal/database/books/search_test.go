package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/entities"
)

func seedCatalog(t *testing.T, repo *Repository) {
	t.Helper()

	orwell := entities.NewAuthor("Orwell", 1903)
	require.NoError(t, repo.authors.Save(&orwell))
	huxley := entities.NewAuthor("Huxley", 1894)
	require.NoError(t, repo.authors.Save(&huxley))

	saveBook(t, repo, "1984", 1949, 328, orwell)
	saveBook(t, repo, "Animal Farm", 1945, 112, orwell)
	saveBook(t, repo, "Homage to Catalonia", 1938, 232, orwell)
	saveBook(t, repo, "Brave New World", 1932, 311, huxley)
	saveBook(t, repo, "Island", 1962, 354, huxley)
}

func titles(books []entities.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestRepository_SearchByAuthorName_ReturnsEveryMatch(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.SearchByAuthorName("Orwell")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"1984", "Animal Farm", "Homage to Catalonia"}, titles(found))
	for _, b := range found {
		assert.Equal(t, "Orwell", b.Author.Name)
	}
}

func TestRepository_SearchByAuthorName_Substring(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.SearchByAuthorName("xle")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Brave New World", "Island"}, titles(found))
}

func TestRepository_SearchByAuthorName_NonASCIIName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)
	saveBook(t, repo, "Вишнёвый сад", 1904, 80, entities.NewAuthor("Чехов", 1860))

	for _, text := range []string{"Чехов", "ехо"} {
		found, ok, err := repo.SearchByAuthorName(text)
		require.NoError(t, err)
		assert.True(t, ok, text)
		assert.Equal(t, []string{"Вишнёвый сад"}, titles(found), text)
	}
}

func TestRepository_SearchByAuthorName_NoResults(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.SearchByAuthorName("Tolstoy")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, found)
}

func TestRepository_SearchByAuthorName_CaseInsensitiveByDefault(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.SearchByAuthorName("orw")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, found, 3)

	found, ok, err = repo.SearchByAuthorName("HUXLEY")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, found, 2)
}

func TestRepository_SearchByAuthorName_CaseSensitive(t *testing.T) {
	repo, cleanup := setupTestDB(t, WithCaseSensitiveSearch(true))
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.SearchByAuthorName("orw")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, found)

	found, ok, err = repo.SearchByAuthorName("Orw")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, found, 3)
}

func TestRepository_SearchByAuthorName_ParametersAreBound(t *testing.T) {
	for _, caseSensitive := range []bool{false, true} {
		repo, cleanup := setupTestDB(t, WithCaseSensitiveSearch(caseSensitive))
		seedCatalog(t, repo)

		for _, input := range []string{"' OR '1'='1", "%", "_", "!", "x'; DROP TABLE books; --"} {
			found, ok, err := repo.SearchByAuthorName(input)
			require.NoError(t, err, input)
			assert.False(t, ok, input)
			assert.Empty(t, found, input)
		}

		all, err := repo.GetAll()
		require.NoError(t, err)
		assert.Len(t, all, 5)

		cleanup()
	}
}

func TestRepository_SearchByAuthorName_WildcardsMatchLiterally(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	saveBook(t, repo, "Percentages", 2001, 100, entities.NewAuthor("100% Anonymous", 1950))
	saveBook(t, repo, "Other", 2002, 100, entities.NewAuthor("Anonymous", 1950))

	found, ok, err := repo.SearchByAuthorName("0% A")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Percentages"}, titles(found))
}

func TestRepository_GetBetweenYears_Inclusive(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.GetBetweenYears(1938, 1949)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Homage to Catalonia", "Animal Farm", "1984"}, titles(found))
}

func TestRepository_GetBetweenYears_SingleYear(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.GetBetweenYears(1962, 1962)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Island"}, titles(found))
}

func TestRepository_GetBetweenYears_ReversedBounds(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.GetBetweenYears(1950, 1940)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, found)
}

func TestRepository_GetBetweenYears_NoResults(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	found, ok, err := repo.GetBetweenYears(1800, 1900)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, found)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "abc", escapeLike("abc"))
	assert.Equal(t, "100!%", escapeLike("100%"))
	assert.Equal(t, "a!_b", escapeLike("a_b"))
	assert.Equal(t, "!!", escapeLike("!"))
}
