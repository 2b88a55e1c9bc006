/*
Package domain contains the core domain models for the Sahaj dialogue engine.

It defines the fundamental entities of the filing dialogue, such as States,
Rules, Sessions and the turn Outcome. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - StateID: A step in the filing decision tree.
  - Session: The per-conversation snapshot (state plus accumulated user data).
  - Rule: A guarded transition; each state owns an ordered list of them.
  - Outcome: The engine's verdict for one turn (next state, patches, content key).
*/
package domain
