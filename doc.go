/*
Package sahaj is a deterministic, scripted dialogue engine that guides Indian
taxpayers through Income Tax Return (ITR) filing: form selection, regime
choice, personal details, income entry and e-verification.

There is no NLP model behind it. Each dialogue state owns an ordered list of
keyword-guarded rules; the first guard contained in the user's message picks
the transition, and a guard-less default rule re-prompts when nothing
matches. Given the same session state and message, the answer is always the
same.

# Architecture

The core is split along hexagonal lines:

  - pkg/engine evaluates one turn as a pure function of (state, data, message).
  - pkg/content renders the response text for the content key a rule selects.
  - pkg/session serializes concurrent turns per session id.
  - pkg/adapters provides the session stores (in-memory, Redis) and MCP.
  - ports define the seams, so hosts can swap any of them.

# Usage

	assistant := sahaj.New()
	reply, err := assistant.Process(ctx, "session-1", "start filing")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply.Text)

The Assistant keeps no per-call state of its own; the session store carries
everything, so the same Assistant serves any number of conversations.
*/
package sahaj
