package inmemstore_test

import (
	. "github.com/onsi/ginkgo"

	"github.com/frizzlenpop/FrizzlenRanks/store"
	"github.com/frizzlenpop/FrizzlenRanks/store/inmemstore"
	. "github.com/frizzlenpop/FrizzlenRanks/store/storebehaviors"
)

var _ = Describe("Store", func() {
	BehavesLikeAStore(func() store.Store { return inmemstore.NewStore() })
})
