package ledger

import (
	"testing"

	"school-erp/internal/models"

	"github.com/stretchr/testify/suite"
)

// SearchTestSuite defines the test suite for transfer search
type SearchTestSuite struct {
	suite.Suite
	transfers []models.Transfer
}

// SetupTest runs before each test
func (s *SearchTestSuite) SetupTest() {
	s.transfers = []models.Transfer{
		{TransferID: "TRF-20240101-AAAAAA", FromAccount: "Main", ToAccount: "Ops", Reference: "Term 1 fees", Date: day(1)},
		{TransferID: "TRF-20240102-BBBBBB", FromAccount: "Ops", ToAccount: "Library", Reference: "Books", Date: day(2)},
		{TransferID: "TRF-20240103-CCCCCC", FromAccountID: "A1", ToAccountID: "B2", Reference: "Bus repairs", Date: day(3)},
	}
}

// TestSearchTestSuite runs the test suite
func TestSearchTestSuite(t *testing.T) {
	suite.Run(t, new(SearchTestSuite))
}

// TestSearchTransfers tests matching across searchable fields
func (s *SearchTestSuite) TestSearchTransfers() {
	testCases := []struct {
		query    string
		expected []string
	}{
		{query: "", expected: []string{"TRF-20240101-AAAAAA", "TRF-20240102-BBBBBB", "TRF-20240103-CCCCCC"}},
		{query: "ops", expected: []string{"TRF-20240101-AAAAAA", "TRF-20240102-BBBBBB"}},
		{query: "LIBRARY", expected: []string{"TRF-20240102-BBBBBB"}},
		{query: "cccccc", expected: []string{"TRF-20240103-CCCCCC"}},
		{query: "term 1", expected: []string{"TRF-20240101-AAAAAA"}},
		{query: "a1", expected: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.query, func() {
			found := SearchTransfers(s.transfers, tc.query)
			ids := make([]string, 0, len(found))
			for _, t := range found {
				ids = append(ids, t.TransferID)
			}
			s.Equal(tc.expected, ids)
		})
	}
}

// TestSortNewestFirst tests list ordering
func (s *SearchTestSuite) TestSortNewestFirst() {
	SortNewestFirst(s.transfers)
	s.Equal("TRF-20240103-CCCCCC", s.transfers[0].TransferID)
	s.Equal("TRF-20240101-AAAAAA", s.transfers[2].TransferID)
}
