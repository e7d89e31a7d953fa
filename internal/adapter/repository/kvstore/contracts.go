package kvstore

import "context"

// ContractTextRepository stores the per-agent contract text under
// ad-hoc "contract-text-<agentID>" keys.
type ContractTextRepository struct{ s *Store }

func NewContractTextRepository(s *Store) *ContractTextRepository {
	return &ContractTextRepository{s: s}
}

func (r *ContractTextRepository) Get(ctx context.Context, agentID string) (string, error) {
	var text string
	ok, err := r.s.get(ctx, contractTextPrefix+agentID, &text)
	if err != nil || !ok {
		return "", err
	}
	return text, nil
}

func (r *ContractTextRepository) Set(ctx context.Context, agentID, text string) error {
	return r.s.put(ctx, contractTextPrefix+agentID, text)
}

func (r *ContractTextRepository) Delete(ctx context.Context, agentID string) error {
	return r.s.delete(ctx, contractTextPrefix+agentID)
}
