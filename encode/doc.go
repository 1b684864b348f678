/*
Package encode reduces balanced-bisection instances to propositional
formulas and maps satisfying assignments back to verified partitions.

Given an instance over 2n nodes with crossing budget k, the encoding uses
one variable per node (true means the node goes to U), one variable per
edge (true means the edge crosses the cut), and auxiliary counter
variables. Three constraint groups are emitted:

1. for every edge (u, v) with edge variable e, four clauses forcing
e to equal the exclusive or of the endpoint variables:

    (¬x_u ∨  x_v ∨  e)
    ( x_u ∨ ¬x_v ∨  e)
    (¬x_u ∨ ¬x_v ∨ ¬e)
    ( x_u ∨  x_v ∨ ¬e)

2. two sequential-counter constraints bounding the size of U by n from
both sides: at most n node variables true, and at most n node variables
false. Together they force |U| = |W| = n.

3. one sequential-counter constraint bounding the number of true edge
variables, i.e the number of crossing edges, by k.

The resulting formula is satisfiable exactly when the instance admits a
balanced partition with at most k crossing edges. A typical round trip:

    enc, err := encode.Encode(inst)
    if err != nil { ... }
    res, err := backend.Solve(ctx, enc.Formula)
    if err != nil { ... }
    if res.Status == sat.Sat {
        part, err := enc.Decode(res.Model)
        ...
    }

Decode never trusts the edge variables: it recounts the crossing edges
from the instance and re-checks every invariant, failing with a
ConsistencyError if the encoder or the backend broke its contract.
*/
package encode
