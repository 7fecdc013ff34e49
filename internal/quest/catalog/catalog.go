// Package catalog holds the static quest table.
package catalog

import (
	"strconv"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
)

var quests = []domain.Quest{
	{
		ID:          1,
		Name:        "Welcome to DeFi",
		Title:       "Welcome to DeFi on Shardeum",
		Description: "Learn DeFi basics and understand Shardeum's role in decentralized finance",
		XPReward:    100,
		Steps: []domain.QuestStep{
			{ID: 1, Title: "Read: What Is Decentralized Finance? The Basics of DeFi"},
			{ID: 2, Title: "Read: What is Shardeum?"},
			{ID: 3, Title: "Connect a wallet to the Shardeum testnet"},
			{ID: 4, Title: "Claim testnet SHM from the faucet"},
			{ID: 5, Title: "Complete the welcome quest"},
		},
	},
	{
		ID:          2,
		Name:        "Token Explorer",
		Title:       "ERC-20 Token Expert",
		Description: "Master ERC-20 tokens and learn to deploy them on Shardeum",
		XPReward:    150,
		Steps: []domain.QuestStep{
			{ID: 1, Title: "Read: ERC-20 Token Standard Documentation"},
			{ID: 2, Title: "Read: How to Deploy ERC-20 Smart Contracts using Truffle"},
			{ID: 3, Title: "Read: How to Mint Your Cryptocurrency on Shardeum Testnet"},
			{ID: 4, Title: "Inspect a token transfer on the explorer"},
			{ID: 5, Title: "Deploy your own ERC-20 token"},
		},
	},
	{
		ID:          3,
		Name:        "DeFi Vault Builder",
		Title:       "DeFi Vault Builder",
		Description: "Learn to build and deploy DeFi vaults for token staking",
		XPReward:    200,
		Steps: []domain.QuestStep{
			{ID: 1, Title: "Read: Build and Deploy an ERC20 Vault on Shardeum"},
			{ID: 2, Title: "Read: How to Deploy a Bank Smart Contract Using Solidity"},
			{ID: 3, Title: "Understand DeFi lending and borrowing protocols"},
			{ID: 4, Title: "Stake tokens into a vault"},
			{ID: 5, Title: "Withdraw from the vault"},
		},
	},
	{
		ID:          4,
		Name:        "Multi-Token Standards Master",
		Title:       "Multi-Token Standards Master",
		Description: "Explore advanced token standards beyond ERC-20",
		XPReward:    250,
		Steps: []domain.QuestStep{
			{ID: 1, Title: "Read: ERC-721 Token Standard Documentation"},
			{ID: 2, Title: "Read: What is ERC-1155?"},
			{ID: 3, Title: "Explore NFT smart contract deployment"},
			{ID: 4, Title: "Compare fungible and non-fungible transfers"},
			{ID: 5, Title: "Mint a multi-token collection"},
		},
	},
	{
		ID:          5,
		Name:        "Web3 Career Strategist",
		Title:       "Web3 Career Strategist",
		Description: "Understand career opportunities in the Web3 and DeFi space",
		XPReward:    300,
		Steps: []domain.QuestStep{
			{ID: 1, Title: "Read: Career Opportunities in Web3 - A Detailed Guide"},
			{ID: 2, Title: "Explore blockchain developer career paths"},
			{ID: 3, Title: "Plan your Web3 learning portfolio"},
			{ID: 4, Title: "Publish a project write-up"},
			{ID: 5, Title: "Join a builder community"},
		},
	},
}

var byID = func() map[int]domain.Quest {
	m := make(map[int]domain.Quest, len(quests))
	for _, q := range quests {
		m[q.ID] = q
	}
	return m
}()

// Lookup returns the quest with id.
func Lookup(id int) (domain.Quest, bool) {
	q, ok := byID[id]
	return q, ok
}

// All returns the quests ordered by ID. The slice is a copy.
func All() []domain.Quest {
	out := make([]domain.Quest, len(quests))
	copy(out, quests)
	return out
}

// Name falls back to "Quest N" for ids outside the catalog.
func Name(id int) string {
	if q, ok := byID[id]; ok {
		return q.Name
	}
	return "Quest " + strconv.Itoa(id)
}

func TotalXP() int {
	sum := 0
	for _, q := range quests {
		sum += q.XPReward
	}
	return sum
}

func Len() int { return len(quests) }
