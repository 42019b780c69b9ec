package storage

import (
	"fmt"

	"github.com/PowerDNS/lmdb-go/lmdb"
)

// table resolves the named database of a routing id, creating it on first use.
func (client *Client) table(routingID uint64) (lmdb.DBI, error) {
	if routingID >= MaxTables {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTable, routingID)
	}

	if dbi, exists := client.openedTable(routingID); exists {
		return dbi, nil
	}

	return client.openTable(routingID)
}

func (client *Client) openedTable(routingID uint64) (lmdb.DBI, bool) {
	client.mtx.RLock()
	defer client.mtx.RUnlock()
	dbi, exists := client.dbi[routingID]
	return dbi, exists
}

func (client *Client) openTable(routingID uint64) (lmdb.DBI, error) {
	client.mtx.Lock()
	defer client.mtx.Unlock()

	if dbi, exists := client.dbi[routingID]; exists {
		return dbi, nil
	}

	if client.env == nil {
		return 0, ErrClosed
	}

	var dbi lmdb.DBI

	err := client.env.Update(func(txn *lmdb.Txn) error {
		var openErr error
		dbi, openErr = txn.OpenDBI(fmt.Sprintf("table_%d", routingID), lmdb.Create)
		return openErr
	})

	if hasError(err) {
		return 0, err
	}

	client.dbi[routingID] = dbi

	return dbi, nil
}
