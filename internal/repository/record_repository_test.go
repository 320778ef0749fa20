package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anjulbhatia/doof-preview/internal/model"
)

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewRecordRepository(dir)

	saved, err := repo.Save("Soup Pot", "Stirs soup on its own", "The Soup-inator")
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "The Soup-inator", saved.Result)

	// 落盘的文件名必须等于记录 ID
	content, err := os.ReadFile(filepath.Join(dir, saved.ID+".json"))
	require.NoError(t, err)

	var onDisk model.Record
	require.NoError(t, json.Unmarshal(content, &onDisk))
	require.Equal(t, *saved, onDisk)

	// ListAll 读回的记录与 Save 返回的完全一致
	records, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, *saved, records[0])
}

func TestSave_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "records")
	repo := NewRecordRepository(dir)

	_, err := repo.Save("a", "b", "c")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestListAll_NewestFirst(t *testing.T) {
	repo := NewRecordRepository(t.TempDir())

	first, err := repo.Save("first", "desc", "The First-inator")
	require.NoError(t, err)
	// ID 按毫秒派生，隔开两次写入避免同毫秒碰撞
	time.Sleep(2 * time.Millisecond)
	second, err := repo.Save("second", "desc", "The Second-inator")
	require.NoError(t, err)

	records, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, second.ID, records[0].ID)
	require.Equal(t, first.ID, records[1].ID)
}

func TestListAll_EmptyOrMissingDir(t *testing.T) {
	// 不存在的目录不报错，返回空列表
	repo := NewRecordRepository(filepath.Join(t.TempDir(), "does-not-exist"))
	records, err := repo.ListAll()
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestListAll_SkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewRecordRepository(dir)

	saved, err := repo.Save("ok", "desc", "The OK-inator")
	require.NoError(t, err)

	// 损坏的文件和无关文件都应被跳过
	require.NoError(t, os.WriteFile(filepath.Join(dir, "9999999999999.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	records, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, saved.ID, records[0].ID)
}

func TestSave_PrettyPrintsJSON(t *testing.T) {
	dir := t.TempDir()
	repo := NewRecordRepository(dir)

	saved, err := repo.Save("a", "b", "c")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, saved.ID+".json"))
	require.NoError(t, err)
	require.Contains(t, string(content), "\n  \"id\"")
}
