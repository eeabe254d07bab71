package store

import (
	"fmt"

	"gorm.io/gorm"
)

// ProductsChannel is the NOTIFY channel carrying product row changes.
const ProductsChannel = "products_changes"

// The payload mirrors the realtime.Event JSON shape. Rows are reduced to id and
// status: pg_notify rejects payloads of 8000 bytes or more and that error
// would abort the write that fired the trigger.
const productsTriggerSQL = `
CREATE OR REPLACE FUNCTION notify_products_change() RETURNS trigger AS $$
DECLARE
	new_row jsonb;
	old_row jsonb;
BEGIN
	IF TG_OP <> 'DELETE' THEN
		new_row := jsonb_build_object('id', NEW.id, 'status', NEW.status);
	END IF;
	IF TG_OP <> 'INSERT' THEN
		old_row := jsonb_build_object('id', OLD.id, 'status', OLD.status);
	END IF;
	PERFORM pg_notify('` + ProductsChannel + `', json_build_object(
		'type', TG_OP,
		'table', TG_TABLE_NAME,
		'new', new_row,
		'old', old_row
	)::text);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`

var productsTriggerDDL = []string{
	productsTriggerSQL,
	`DROP TRIGGER IF EXISTS products_notify ON products`,
	`CREATE TRIGGER products_notify
	AFTER INSERT OR UPDATE OR DELETE ON products
	FOR EACH ROW EXECUTE FUNCTION notify_products_change()`,
}

// InstallChangeTriggers makes Postgres announce product changes on
// ProductsChannel. Safe to run on every start.
func InstallChangeTriggers(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range productsTriggerDDL {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("install products trigger: %w", err)
			}
		}
		return nil
	})
}
