/*
Package questsdk is a client for the questboard service.

Public endpoints are methods on Client:

	client := questsdk.NewClient("http://localhost:8080")

	progress, err := client.StartQuest(ctx, wallet, 1)
	_, err = client.UpdateStep(ctx, wallet, 1, 1, true)
	result, err := client.CompleteQuest(ctx, 1, questsdk.CompleteQuestRequest{
		WalletAddress:   wallet,
		TransactionHash: txHash,
	})

Errors returned by the server decode into *APIError and compare equal to
the predefined values:

	if errors.Is(err, questsdk.ErrAlreadyCompleted) {
		// a replay; the first completion already counted
	}

A retryable error (503 transient_conflict or unavailable, 500) has
Retryable set.

Login returns a Session for the bearer-authenticated endpoints:

	session, err := client.Login(ctx, questsdk.LoginRequest{WalletAddress: wallet})
	me, err := session.Me(ctx)

The same wire types are used by the server, so this package is the source
of truth for request and response shapes.
*/
package questsdk
